package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/brian1917/vmmtool/cmd"
	"github.com/brian1917/vmmtool/cmd/servermgmt"
	"github.com/brian1917/vmmtool/utils"
)

func main() {
	// Run the same command against every server profile
	if len(os.Args) > 2 && os.Args[1] == "all-servers" && os.Args[2] != "-h" && os.Args[2] != "--help" {
		for _, server := range servermgmt.GetAllServerNames() {
			args := append(os.Args[2:], "--server", server)
			utils.LogInfo(fmt.Sprintf("running %s", strings.Join(args, " ")), true)
			command := exec.Command(os.Args[0], args...)
			stdout, err := command.Output()
			if err != nil {
				utils.LogError(err.Error())
			}
			fmt.Println(string(stdout))
		}
		return
	}

	// Run command for all other scenarios
	cmd.Execute()
}
