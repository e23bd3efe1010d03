// Package manifest loads, edits and writes .nuspec package manifests.
//
// Edits are limited to two places: metadata fields named by the global
// defaults, and the dependencies element, which is always rebuilt whole.
// Everything else in the document is written back as it was read, apart
// from indentation which is normalised to two spaces.
package manifest

import (
	"bytes"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	"github.com/beevik/etree"
)

const (
	packageTag      = "package"
	metadataTag     = "metadata"
	dependenciesTag = "dependencies"
	groupTag        = "group"
	dependencyTag   = "dependency"

	// DependencyExclude is the exclude attribute stamped on every dependency
	DependencyExclude = "Build,Analyzers"

	defaultDeclaration = `version="1.0" encoding="utf-8"`
	indentSpaces       = 2
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DefaultLookup provides metadata default values by field name
type DefaultLookup interface {
	Lookup(field string) (string, bool)
}

// Manifest is a parsed package manifest
type Manifest struct {
	doc      *etree.Document
	metadata *etree.Element
	bom      bool
}

// Parse reads manifest content. It fails with ErrManifestParse when the
// content is not well-formed XML or has no package/metadata element.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{bom: bytes.HasPrefix(data, utf8BOM)}

	m.doc = etree.NewDocument()
	if err := m.doc.ReadFromBytes(bytes.TrimPrefix(data, utf8BOM)); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "manifest is not well-formed XML")
	}

	root := m.doc.Root()
	if root == nil || root.Tag != packageTag {
		return nil, errors.New(errors.ErrManifestParse, "manifest has no package element")
	}

	m.metadata = root.SelectElement(metadataTag)
	if m.metadata == nil {
		return nil, errors.New(errors.ErrManifestParse, "manifest has no metadata element")
	}

	return m, nil
}

// Field returns the text of a metadata field and whether it exists
func (m *Manifest) Field(name string) (string, bool) {
	el := m.metadata.SelectElement(name)
	if el == nil {
		return "", false
	}
	return el.Text(), true
}

// ID returns the package id
func (m *Manifest) ID() string {
	id, _ := m.Field("id")
	return id
}

// ApplyDefaults overwrites every direct metadata child whose tag has a
// default value. Fields without a default are left alone and no fields
// are added. It returns the names of the fields that were set.
func (m *Manifest) ApplyDefaults(defaults DefaultLookup) []string {
	var applied []string
	for _, field := range m.metadata.ChildElements() {
		value, ok := defaults.Lookup(field.Tag)
		if !ok {
			continue
		}
		field.SetText(value)
		applied = append(applied, field.Tag)
	}
	return applied
}

// SetDependencies replaces any dependencies elements with one rebuilt from
// deps. An empty map leaves the manifest with no dependencies element.
func (m *Manifest) SetDependencies(deps types.DependencyMap) {
	for _, existing := range m.metadata.SelectElements(dependenciesTag) {
		m.metadata.RemoveChild(existing)
	}

	if len(deps) == 0 {
		return
	}

	dependencies := m.metadata.CreateElement(dependenciesTag)
	for _, framework := range deps.Frameworks() {
		group := dependencies.CreateElement(groupTag)
		group.CreateAttr("targetFramework", framework)
		for _, id := range deps.Packages(framework) {
			dep := group.CreateElement(dependencyTag)
			dep.CreateAttr("id", id)
			dep.CreateAttr("version", deps[framework][id])
			dep.CreateAttr("exclude", DependencyExclude)
		}
	}
}

// Dependencies reads the dependency groups back from the manifest
func (m *Manifest) Dependencies() types.DependencyMap {
	deps := types.DependencyMap{}
	for _, dependencies := range m.metadata.SelectElements(dependenciesTag) {
		for _, group := range dependencies.SelectElements(groupTag) {
			framework := group.SelectAttrValue("targetFramework", "")
			pkgs, ok := deps[framework]
			if !ok {
				pkgs = map[string]string{}
				deps[framework] = pkgs
			}
			for _, dep := range group.SelectElements(dependencyTag) {
				pkgs[dep.SelectAttrValue("id", "")] = dep.SelectAttrValue("version", "")
			}
		}
	}
	return deps
}

// HasDependencies reports whether a dependencies element is present
func (m *Manifest) HasDependencies() bool {
	return m.metadata.SelectElement(dependenciesTag) != nil
}

// Bytes renders the manifest. The XML declaration is kept when present
// and added otherwise; a leading byte order mark is preserved.
func (m *Manifest) Bytes() ([]byte, error) {
	m.ensureDeclaration()
	m.doc.Indent(indentSpaces)

	out, err := m.doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestWrite, "cannot render manifest")
	}
	if m.bom {
		out = append(append([]byte{}, utf8BOM...), out...)
	}
	return out, nil
}

func (m *Manifest) ensureDeclaration() {
	for _, t := range m.doc.Child {
		if pi, ok := t.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	m.doc.InsertChildAt(0, etree.NewProcInst("xml", defaultDeclaration))
}
