package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var promptInput io.Reader = os.Stdin

// ConfirmUpdate decides whether a command may apply a change. Without
// --update-vmm the change is only logged. With --update-vmm the user is
// prompted unless --no-prompt is also set.
func ConfirmUpdate(commandName, change string) bool {
	if !viper.GetBool("update_vmm") {
		LogInfo(fmt.Sprintf("%s identified a change: %s. See %s for details. To apply it, run again using --update-vmm. A prompt will be shown before any change unless --no-prompt is used.", commandName, change, LogFile), true)
		return false
	}

	if viper.GetBool("no_prompt") {
		return true
	}

	fmt.Printf("%s [PROMPT] - vmmtool will apply this change: %s. Do you want to run the change (yes/no)? ", time.Now().Format("2006-01-02 15:04:05 "), change)
	answer, _ := bufio.NewReader(promptInput).ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		LogInfo("prompt denied.", true)
		return false
	}
	return true
}
