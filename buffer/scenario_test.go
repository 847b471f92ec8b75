package buffer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dshills/strand/char"
	"github.com/dshills/strand/codec"
)

// scenarioStep is one scripted operation or expectation. Exactly one
// field is set per step.
type scenarioStep struct {
	AppendText  *string `yaml:"append_text"`
	AppendBytes *[]byte `yaml:"append_bytes"`
	Set         *struct {
		Index   int   `yaml:"index"`
		Ordinal int64 `yaml:"ordinal"`
	} `yaml:"set"`
	ExpectLen   *int    `yaml:"expect_len"`
	ExpectText  *string `yaml:"expect_text"`
	ExpectBytes *[]byte `yaml:"expect_bytes"`
	ExpectBool  *bool   `yaml:"expect_bool"`
}

type scenarioFile struct {
	Scenarios []struct {
		Name  string         `yaml:"name"`
		Steps []scenarioStep `yaml:"steps"`
	} `yaml:"scenarios"`
}

func TestScenarios(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	if err != nil {
		t.Fatalf("read scenarios: %v", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("parse scenarios: %v", err)
	}
	if len(file.Scenarios) == 0 {
		t.Fatal("no scenarios loaded")
	}

	for _, sc := range file.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			b := New()
			for i, step := range sc.Steps {
				switch {
				case step.AppendText != nil:
					b.AppendText(*step.AppendText)
				case step.AppendBytes != nil:
					b.AppendBytes(*step.AppendBytes)
				case step.Set != nil:
					b.Set(step.Set.Index, char.FromInt(step.Set.Ordinal))
				case step.ExpectLen != nil:
					if got := b.Len(); got != *step.ExpectLen {
						t.Errorf("step %d: Len() = %d, want %d", i, got, *step.ExpectLen)
					}
				case step.ExpectText != nil:
					if got := b.Text(codec.UTF8); got != *step.ExpectText {
						t.Errorf("step %d: Text() = %q, want %q", i, got, *step.ExpectText)
					}
				case step.ExpectBytes != nil:
					if got := b.Bytes(codec.UTF8); !bytes.Equal(got, *step.ExpectBytes) {
						t.Errorf("step %d: Bytes() = %v, want %v", i, got, *step.ExpectBytes)
					}
				case step.ExpectBool != nil:
					if got := b.Bool(); got != *step.ExpectBool {
						t.Errorf("step %d: Bool() = %v, want %v", i, got, *step.ExpectBool)
					}
				default:
					t.Fatalf("step %d: empty step", i)
				}
			}
		})
	}
}
