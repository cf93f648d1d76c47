package psshell_test

import (
	"testing"

	"github.com/brian1917/vmmtool/psshell"
	"github.com/brian1917/vmmtool/psshell/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, "'hv01'", psshell.Quote("hv01"))
	assert.Equal(t, "'it''s'", psshell.Quote("it's"))
	assert.Equal(t, "''", psshell.Quote(""))
}

func TestQuoteTypographicApostrophes(t *testing.T) {
	assert.Equal(t, "'O’’Brien'", psshell.Quote("O’Brien"))
	assert.Equal(t, "'a‘‘b'", psshell.Quote("a‘b"))
	assert.Equal(t, "'a‚‚b'", psshell.Quote("a‚b"))
	assert.Equal(t, "'a‛‛b'", psshell.Quote("a‛b"))
	assert.Equal(t,
		"'x‘‘; Remove-Item C:\\ -Recurse; ’’'",
		psshell.Quote("x‘; Remove-Item C:\\ -Recurse; ’"))
}

func TestQuoteControlCharacters(t *testing.T) {
	assert.Equal(t, "('line1' + \"`n\" + 'line2')", psshell.Quote("line1\nline2"))
	assert.Equal(t, "(\"`r\" + \"`n\")", psshell.Quote("\r\n"))
	assert.Equal(t, "('a' + \"`t\" + 'it''s')", psshell.Quote("a\tit's"))
	assert.Equal(t, "('a' + \"$([char]0x1B)\")", psshell.Quote("a\x1b"))
}

func TestRunKeepsQuotedLineBreaks(t *testing.T) {
	sh := pstest.New()
	_, err := psshell.Run(sh, "Set-Thing -Description "+psshell.Quote("first\nsecond"))
	require.NoError(t, err)
	require.Len(t, sh.Calls, 1)
	assert.Equal(t, "Set-Thing -Description ('first' + \"`n\" + 'second')", sh.Calls[0])
}

func TestBool(t *testing.T) {
	assert.Equal(t, "$true", psshell.Bool(true))
	assert.Equal(t, "$false", psshell.Bool(false))
}

func TestScriptIsOneLine(t *testing.T) {
	assert.Equal(t, "$a = 1; $a", psshell.Script("$a = 1", "$a"))
}

func TestRunSendsOneLine(t *testing.T) {
	sh := pstest.New().On("Get-Date", " today \r\n")
	res, err := psshell.Run(sh, "Get-Date\n| Out-String")
	require.NoError(t, err)
	assert.Equal(t, "today", res.Stdout)
	require.Len(t, sh.Calls, 1)
	assert.Equal(t, "Get-Date | Out-String", sh.Calls[0])
}

func TestRunJSONDecodesArray(t *testing.T) {
	sh := pstest.New().On("Get-Thing", `[{"Name":"a","Size":1},{"Name":"b","Size":2}]`)
	var out []struct {
		Name string
		Size int64
	}
	_, err := psshell.RunJSON(sh, "Get-Thing", &out)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[1].Name)
	assert.Equal(t, int64(2), out[1].Size)
	assert.Contains(t, sh.Calls[0], "ConvertTo-Json -Compress -Depth 4 -InputObject @(Get-Thing)")
}

func TestRunJSONEmptyOutput(t *testing.T) {
	sh := pstest.New()
	var out []struct{ Name string }
	_, err := psshell.RunJSON(sh, "Get-Nothing", &out)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunJSONBadOutput(t *testing.T) {
	sh := pstest.New().On("Get-Thing", "WARNING: not json")
	var out []struct{ Name string }
	_, err := psshell.RunJSON(sh, "Get-Thing", &out)
	assert.Error(t, err)
}

func TestRunRedactedHidesSecrets(t *testing.T) {
	sh := pstest.New().Fail("ConvertTo-SecureString", "access denied for s3cr'et")
	res, err := psshell.RunRedacted(sh, "ConvertTo-SecureString "+psshell.Quote("s3cr'et"), "s3cr'et")
	require.Error(t, err)
	assert.NotContains(t, res.Script, "s3cr")
	assert.NotContains(t, res.Stderr, "s3cr")
	assert.NotContains(t, err.Error(), "s3cr")
	assert.Contains(t, res.Script, "'****'")
	// the shell still received the real value
	assert.Contains(t, sh.Calls[0], "'s3cr''et'")
}

func TestRunRedactedHidesTypographicSecret(t *testing.T) {
	secret := "pa’ss"
	sh := pstest.New().Fail("ConvertTo-SecureString", "access denied for "+secret)
	res, err := psshell.RunRedacted(sh, "ConvertTo-SecureString "+psshell.Quote(secret), secret)
	require.Error(t, err)
	assert.NotContains(t, res.Script, "pa’")
	assert.NotContains(t, res.Stderr, "pa’")
	assert.NotContains(t, err.Error(), "pa’")
	assert.Equal(t, "ConvertTo-SecureString '****'", res.Script)
	assert.Contains(t, sh.Calls[0], "'pa’’ss'")
}

func TestRunErrorUsesStderr(t *testing.T) {
	sh := pstest.New().Fail("Get-Disk", "Get-Disk : Access denied\r\nAt line:1 char:1")
	_, err := psshell.Run(sh, "Get-Disk")
	require.Error(t, err)
	assert.Equal(t, "Get-Disk : Access denied", err.Error())
}

func TestOpenInvalidTransport(t *testing.T) {
	_, err := psshell.Open(psshell.Config{Transport: "telnet", ComputerName: "hv01"})
	assert.Error(t, err)
}

func TestOpenRequiresComputerName(t *testing.T) {
	_, err := psshell.Open(psshell.Config{Transport: psshell.TransportSSH})
	assert.Error(t, err)
}
