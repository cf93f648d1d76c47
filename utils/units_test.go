package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToGB(t *testing.T) {
	assert.Equal(t, "256.00", BytesToGB(274877906944))
	assert.Equal(t, "1.50", BytesToGB(1610612736))
	assert.Equal(t, "0.00", BytesToGB(0))
	assert.Equal(t, "0.93", BytesToGB(1000000000))
}

func TestMBToGB(t *testing.T) {
	assert.Equal(t, "128.00", MBToGB(131072))
	assert.Equal(t, "0.50", MBToGB(512))
}

func TestKBToGB(t *testing.T) {
	assert.Equal(t, "256.00", KBToGB(268435456))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "50", Percent(1, 2))
	assert.Equal(t, "33", Percent(1, 3))
	assert.Equal(t, "67", Percent(2, 3))
	assert.Equal(t, "0", Percent(5, 0))
	assert.Equal(t, "100", Percent(7, 7))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "37", FormatPercent(37))
	assert.Equal(t, "38", FormatPercent(37.6))
}

func TestIntPtrToStr(t *testing.T) {
	v := 120
	assert.Equal(t, "120", IntPtrToStr(&v))
	assert.Equal(t, "", IntPtrToStr(nil))
}

func TestOutputFileName(t *testing.T) {
	assert.Equal(t, "out.csv", OutputFileName("host-memory", "out.csv"))
	assert.Regexp(t, `^vmmtool-host-memory-\d{8}_\d{6}\.csv$`, OutputFileName("host-memory", ""))
}
