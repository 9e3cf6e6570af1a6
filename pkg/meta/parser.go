package meta

import (
	"encoding/json"
	"io"
	"os"

	"github.com/thorn-jmh/errorst"
)

// The interchange document. The parsing front end serializes its model to
// JSON; entities reference type entries and classes by name, and the loader
// links the names back into pointers.

type document struct {
	TypeEntries     []*entryDoc    `json:"typeEntries"`
	Classes         []*classDoc    `json:"classes,omitempty"`
	GlobalFunctions []*functionDoc `json:"globalFunctions,omitempty"`
	GlobalEnums     []*enumDoc     `json:"globalEnums,omitempty"`
}

type entryDoc struct {
	Name                  string      `json:"name"`
	Package               string      `json:"package,omitempty"`
	Kind                  Kind        `json:"kind"`
	Generate              *bool       `json:"generate,omitempty"` // default true
	HostPrimitive         bool        `json:"hostPrimitive,omitempty"`
	DefaultConstructor    string      `json:"defaultConstructor,omitempty"`
	HasDefaultConstructor bool        `json:"hasDefaultConstructor,omitempty"`
	ComplexKind           ComplexKind `json:"complexKind,omitempty"`
	GenericClass          bool        `json:"genericClass,omitempty"`
	Origin                string      `json:"origin,omitempty"`
}

type typeDoc struct {
	TypeEntry               string     `json:"typeEntry"`
	Indirections            int        `json:"indirections,omitempty"`
	Reference               bool       `json:"reference,omitempty"`
	Constant                bool       `json:"constant,omitempty"`
	NativePointer           bool       `json:"nativePointer,omitempty"`
	ArrayElement            *typeDoc   `json:"arrayElement,omitempty"`
	Instantiations          []*typeDoc `json:"instantiations,omitempty"`
	OriginalTemplateType    *typeDoc   `json:"originalTemplateType,omitempty"`
	OriginalTypeDescription string     `json:"originalTypeDescription,omitempty"`
}

type classDoc struct {
	Name      string         `json:"name"`
	Package   string         `json:"package,omitempty"`
	TypeEntry string         `json:"typeEntry"`
	Enclosing string         `json:"enclosing,omitempty"`
	Functions []*functionDoc `json:"functions,omitempty"`
}

type functionDoc struct {
	Name            string         `json:"name"`
	OriginalName    string         `json:"originalName,omitempty"`
	ReturnType      *typeDoc       `json:"returnType,omitempty"`
	Arguments       []*argumentDoc `json:"arguments,omitempty"`
	Constructor     bool           `json:"constructor,omitempty"`
	Private         bool           `json:"private,omitempty"`
	UserAdded       bool           `json:"userAdded,omitempty"`
	CopyConstructor bool           `json:"copyConstructor,omitempty"`
}

type enumDoc struct {
	Name      string `json:"name"`
	Package   string `json:"package,omitempty"`
	TypeEntry string `json:"typeEntry"`
	Enclosing string `json:"enclosing,omitempty"`
}

type argumentDoc struct {
	Name                 string   `json:"name"`
	Type                 *typeDoc `json:"type"`
	OriginalDefaultValue string   `json:"originalDefaultValue,omitempty"`
	DefaultValue         string   `json:"defaultValue,omitempty"`
	Removed              bool     `json:"removed,omitempty"`
}

// FromJSONFile reads an interchange document from a JSON file and returns the
// linked API model.
func FromJSONFile(filePath string) (*API, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errorst.NewError("failed to open file %s: %w", filePath, err)
	}

	defer func() {
		_ = f.Close()
	}()

	return FromJSON(f)
}

// FromJSON reads an interchange document from a JSON reader and returns the
// linked API model.
func FromJSON(r io.Reader) (*API, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errorst.NewError("failed to unmarshal JSON: %w", err)
	}

	return link(&doc)
}
