/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tool

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const (
	orderedZero   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	orderFreeZero = "abandon ability able about above absent absorb abstract absurd abuse access accident account achieve acid acoustic"
)

func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		// Keep cobra from falling back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertOrderedToOrderFree(t *testing.T) {
	out, err := runCommand(t, ConvertCmd(), "", orderedZero)
	require.NoError(t, err)
	require.Equal(t, orderFreeZero+"\n", out)
}

func TestConvertOrderFreeToOrdered(t *testing.T) {
	out, err := runCommand(t, ConvertCmd(), "", orderFreeZero)
	require.NoError(t, err)
	require.Equal(t, orderedZero+"\n", out)
}

func TestConvertReadsStdin(t *testing.T) {
	out, err := runCommand(t, ConvertCmd(), orderedZero+"\n")
	require.NoError(t, err)
	require.Equal(t, orderFreeZero+"\n", out)
}

func TestConvertShuffledOrderFreePhrase(t *testing.T) {
	words := strings.Fields(orderFreeZero)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	out, err := runCommand(t, ConvertCmd(), "", strings.Join(words, " "))
	require.NoError(t, err)
	require.Equal(t, orderedZero+"\n", out)
}

func TestConvertRejectsOddWordCounts(t *testing.T) {
	_, err := runCommand(t, ConvertCmd(), "", "abandon abandon abandon")
	require.ErrorContains(t, err, "cannot convert a 3-word phrase")

	fifteen := strings.TrimSpace(strings.Repeat("abandon ", 15))
	_, err = runCommand(t, ConvertCmd(), "", fifteen)
	require.ErrorContains(t, err, "no order-free phrase length exists")
}

func TestConvertRejectsEmptyInput(t *testing.T) {
	_, err := runCommand(t, ConvertCmd(), "  \n ")
	require.ErrorContains(t, err, "no phrase given")
}

func TestEncodeOrderFree(t *testing.T) {
	out, err := runCommand(t, EncodeCmd(), "", strings.Repeat("00", 16))
	require.NoError(t, err)
	require.Equal(t, orderFreeZero+"\n", out)
}

func TestEncodeOrdered(t *testing.T) {
	out, err := runCommand(t, EncodeCmd(), "", "--ordered", strings.Repeat("00", 16))
	require.NoError(t, err)
	require.Equal(t, orderedZero+"\n", out)
}

func TestEncodeRejectsBadHex(t *testing.T) {
	_, err := runCommand(t, EncodeCmd(), "", "zz")
	require.ErrorContains(t, err, "is not a hex string")
}

func TestDecodeSelectsSchemeByWordCount(t *testing.T) {
	zeros := strings.Repeat("00", 16) + "\n"

	out, err := runCommand(t, DecodeCmd(), "", orderedZero)
	require.NoError(t, err)
	require.Equal(t, zeros, out)

	out, err = runCommand(t, DecodeCmd(), "", orderFreeZero)
	require.NoError(t, err)
	require.Equal(t, zeros, out)
}

func TestDecodeRejectsUnknownLength(t *testing.T) {
	_, err := runCommand(t, DecodeCmd(), "", "abandon abandon")
	require.ErrorContains(t, err, "no phrase scheme uses 2 words")
}

func TestGenerate(t *testing.T) {
	out, err := runCommand(t, GenerateCmd(), "", "--bits", "192")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	entropy, err := hex.DecodeString(strings.TrimPrefix(lines[0], "entropy: "))
	require.NoError(t, err)
	require.Len(t, entropy, 24)

	ordered := strings.Fields(strings.TrimPrefix(lines[1], "ordered: "))
	require.Len(t, ordered, 18)

	orderFree := strings.Fields(strings.TrimPrefix(lines[2], "order-free: "))
	require.Len(t, orderFree, 26)

	// Both phrases must decode back to the same entropy.
	decoded, err := decodePhrase(ordered)
	require.NoError(t, err)
	require.Equal(t, entropy, decoded)

	decoded, err = decodePhrase(orderFree)
	require.NoError(t, err)
	require.Equal(t, entropy, decoded)
}

func TestGenerateRejectsBadBits(t *testing.T) {
	_, err := runCommand(t, GenerateCmd(), "", "--bits", "100")
	require.ErrorContains(t, err, "entropy must be 128, 192 or 256 bits")
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, VersionCmd(), "")
	require.NoError(t, err)
	require.Contains(t, out, "noomnem:")
	require.Contains(t, out, "Version:")
	require.Contains(t, out, "Go version:")
}

func TestVersionWithTrailingArgs(t *testing.T) {
	_, err := runCommand(t, VersionCmd(), "", "trailingargs")
	require.EqualError(t, err, "trailing args detected")
}
