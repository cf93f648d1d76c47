package utils

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/brian1917/vmmtool/psshell"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFile is the name of the log written in the working directory.
const LogFile = "vmmtool.log"

// Logger is the global logger for vmmtool
var Logger = log.New()

// runID is attached to every entry so one invocation can be followed in the log.
var runID = uuid.New().String()

func init() {
	Logger.SetOutput(&lumberjack.Logger{
		Filename: LogFile,
		MaxSize:  10, // megabytes
		MaxAge:   30, // days
	})
	Logger.SetFormatter(new(logFormatter))
	Logger.SetLevel(log.DebugLevel)
}

func entry() *log.Entry {
	return Logger.WithField("run", runID)
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05 ")
}

// LogError writes the error to vmmtool.log, prints it to stdout, and exits.
func LogError(msg string) {
	fmt.Printf("%s [ERROR] - %s see %s for detailed information.\r\n", timestamp(), msg, LogFile)
	entry().Error(msg)
	os.Exit(1)
}

// LogWarning writes the log to vmmtool.log and optionally prints msg to stdout.
func LogWarning(msg string, stdout bool) {
	if stdout {
		fmt.Printf("%s [WARNING] - %s\r\n", timestamp(), msg)
	}
	entry().Warn(msg)
}

// LogInfo writes the log to vmmtool.log and optionally prints msg to stdout.
func LogInfo(msg string, stdout bool) {
	if stdout {
		fmt.Printf("%s [INFO] - %s\r\n", timestamp(), msg)
	}
	entry().Info(msg)
}

// LogDebug writes the log to vmmtool.log only if the debug flag is set.
// Debug logic is not required in code.
func LogDebug(msg string) {
	if viper.GetBool("debug") {
		entry().Debug(msg)
	}
}

// LogAPIResp logs one script execution. The callType is the name of the call
// (GetVMHost, GetDisks, etc.) and is only used for logging.
// The script is logged at debug level and the output only when verbose is set.
func LogAPIResp(callType string, a psshell.Result) {
	if a.Script == "" {
		return
	}
	LogDebug(fmt.Sprintf("%s script: %s", callType, a.Script))
	LogInfo(fmt.Sprintf("%s completed in %s", callType, a.Duration.Round(time.Millisecond)), false)
	if viper.GetBool("verbose") {
		LogDebug(fmt.Sprintf("%s output: %s", callType, a.Stdout))
	}
	for _, line := range strings.Split(a.Stderr, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			LogWarning(fmt.Sprintf("%s stderr: %s", callType, line), false)
		}
	}
}

// LogMultiAPIResp logs every entry of a multi-step call in name order.
func LogMultiAPIResp(apiResps map[string]psshell.Result) {
	keys := make([]string, 0, len(apiResps))
	for k := range apiResps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		LogAPIResp(k, apiResps[k])
	}
}

// LogStartCommand is used at the beginning of each command
func LogStartCommand(commandName string) {
	entry().Info("-----------------------------------------------------------------------------")
	LogInfo(fmt.Sprintf("vmmtool version %s - started %s", GetVersion(), commandName), false)
	if name := TargetServerName(); name != "" {
		LogInfo(fmt.Sprintf("using %s server profile - %s", name, viper.GetString(name+".server")), false)
	}
}

// LogEndCommand is used at the end of each command
func LogEndCommand(commandName string) {
	LogInfo(fmt.Sprintf("%s completed", commandName), true)
}

// LogBlankValue replaces a blank string with <empty>
func LogBlankValue(val string) string {
	if val == "" {
		return "<empty>"
	}
	return val
}

// logFormatter writes "time [LEVEL] message key=value".
type logFormatter struct{}

func (f *logFormatter) Format(e *log.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteString(e.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, " [%s] %s", strings.ToUpper(e.Level.String()), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := fmt.Sprint(e.Data[k])
		if strings.ContainsAny(v, " \"=") {
			v = fmt.Sprintf("%q", v)
		}
		fmt.Fprintf(b, " %s=%s", k, v)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
