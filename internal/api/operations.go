package api

import "github.com/sarthakbiswas97/X-clone/internal/gql"

// The fixed set of operations the client performs. Documents and selection
// sets mirror the deployed schema; the result shapes in api.go are the
// contract consumers destructure.
var (
	opVerifyUserGoogleToken = gql.Operation{
		Name: "VerifyUserGoogleToken",
		Document: `query VerifyUserGoogleToken($token: String!) {
  verifyGoogleToken(token: $token)
}`,
	}

	opGetCurrentUser = gql.Operation{
		Name: "GetCurrentUser",
		Document: `query GetCurrentUser {
  getCurrentUser {
    id
    profileImageURL
    firstName
    lastName
    email
    recommendedUser {
      id
      firstName
      lastName
      profileImageURL
    }
    followers {
      id
      firstName
      lastName
      profileImageURL
    }
    following {
      id
      firstName
      lastName
      profileImageURL
    }
    tweets {
      id
      content
      imageURL
      author {
        id
        firstName
        lastName
        profileImageURL
      }
    }
  }
}`,
	}

	opGetUserByID = gql.Operation{
		Name: "GetUserById",
		Document: `query GetUserById($id: ID!) {
  getUserById(id: $id) {
    id
    firstName
    lastName
    profileImageURL
    followers {
      id
      firstName
      lastName
      profileImageURL
    }
    following {
      id
      firstName
      lastName
      profileImageURL
    }
    tweets {
      id
      content
      imageURL
      author {
        id
        firstName
        lastName
        profileImageURL
      }
    }
  }
}`,
	}

	opGetAllTweets = gql.Operation{
		Name: "GetAllTweets",
		Document: `query GetAllTweets {
  getAllTweets {
    id
    content
    imageURL
    author {
      id
      firstName
      lastName
      profileImageURL
    }
  }
}`,
	}

	opCreateTweet = gql.Operation{
		Name: "CreateTweet",
		Document: `mutation CreateTweet($payload: CreateTweetData!) {
  createTweet(payload: $payload) {
    id
  }
}`,
	}

	opFollowUser = gql.Operation{
		Name: "FollowUser",
		Document: `mutation FollowUser($to: ID!) {
  followUser(to: $to)
}`,
	}

	opUnfollowUser = gql.Operation{
		Name: "UnfollowUser",
		Document: `mutation UnfollowUser($to: ID!) {
  unfollowUser(to: $to)
}`,
	}

	opGetSignedURLForTweet = gql.Operation{
		Name: "GetSignedURL",
		Document: `query GetSignedURL($imageName: String!, $imageType: String!) {
  getSignedURLForTweet(imageName: $imageName, imageType: $imageType)
}`,
	}
)
