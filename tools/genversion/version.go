package genversion

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var outputTemplate = template.Must(template.New("output").Parse(outputTemplateStr))

const outputTemplateStr = `// Code generated by genversion. DO NOT EDIT.

package gen

func Version() string {
	return "{{.}}"
}
`

func GenFile(commitHash string, outFile io.Writer) error {
	return outputTemplate.Execute(outFile, commitHash)
}

// ResolveHead reads a commit hash out of a .git/HEAD file.
//
// The contents of .git/HEAD might be a raw hash like
//
//	c0ffeec0ffec0ffec0ffec0ffec0ffec0ffeec0f
//
// or a line like
//
//	ref: refs/heads/main
func ResolveHead(headPath string) (string, error) {
	headBytes, err := os.ReadFile(headPath)
	if err != nil {
		return "", fmt.Errorf("couldn't os.ReadFile(%q): %w", headPath, err)
	}

	if !bytes.HasPrefix(headBytes, []byte("ref: ")) {
		return string(bytes.TrimSpace(headBytes)), nil
	}

	ref := strings.TrimSpace(strings.SplitAfterN(string(headBytes), " ", 2)[1])
	refPath := filepath.Join(filepath.Dir(headPath), ref)
	commitHash, err := os.ReadFile(refPath)
	if err != nil {
		return "", fmt.Errorf("couldn't os.ReadFile(%q): %w", refPath, err)
	}
	return string(bytes.TrimSpace(commitHash)), nil
}
