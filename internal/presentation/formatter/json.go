package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the scene, the selection flag and the detail text as
// indented JSON.
func (f *JSONFormatter) Format(w io.Writer, r Report) error {
	data, err := sonic.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
