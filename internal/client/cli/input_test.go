package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("John Smith\n"), "Name?", &out)
	if err != nil || got != "John Smith" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetFields(t *testing.T) {
	var out bytes.Buffer
	got, err := GetFields(rdr("name=John Smith\nphone= 555-0101\n\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "John Smith", "phone": "555-0101"}, got)
}

func TestGetFields_Invalid(t *testing.T) {
	var out bytes.Buffer
	_, err := GetFields(rdr("no-equals-sign\n\n"), &out)
	require.Error(t, err)
}

func TestGetFields_Empty(t *testing.T) {
	var out bytes.Buffer
	got, err := GetFields(rdr("\n"), &out)
	require.NoError(t, err)
	assert.Empty(t, got)
}
