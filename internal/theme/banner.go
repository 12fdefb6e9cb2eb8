package theme

import (
	"fmt"
)

// Banner returns the CLI banner.
func Banner() string {
	const blue = "\033[34m"
	const gray = "\033[90m"
	const reset = "\033[0m"

	art := "" +
		blue + "   ██╗  ██╗      ██████╗██╗      ██████╗ ███╗   ██╗███████╗\n" + reset +
		blue + "   ╚██╗██╔╝     ██╔════╝██║     ██╔═══██╗████╗  ██║██╔════╝\n" + reset +
		blue + "    ╚███╔╝█████╗██║     ██║     ██║   ██║██╔██╗ ██║█████╗\n" + reset +
		blue + "    ██╔██╗╚════╝██║     ██║     ██║   ██║██║╚██╗██║██╔══╝\n" + reset +
		blue + "   ██╔╝ ██╗     ╚██████╗███████╗╚██████╔╝██║ ╚████║███████╗\n" + reset +
		blue + "   ╚═╝  ╚═╝      ╚═════╝╚══════╝ ╚═════╝ ╚═╝  ╚═══╝╚══════╝\n" + reset +
		gray + "   a feed client for the X-clone API\n" + reset
	return art
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}
