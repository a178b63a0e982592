package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// keySet is an unordered set of dotted translation keys.
type keySet map[string]struct{}

func newKeySet(keys ...string) keySet {
	s := make(keySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s keySet) add(key string) {
	s[key] = struct{}{}
}

func (s keySet) has(key string) bool {
	_, ok := s[key]
	return ok
}

// minus returns the keys of s absent from other, sorted.
func (s keySet) minus(other keySet) []string {
	diff := make([]string, 0)
	for k := range s {
		if !other.has(k) {
			diff = append(diff, k)
		}
	}
	sort.Strings(diff)
	return diff
}

func (s keySet) sorted() []string {
	return sortedKeys(s)
}

// sortedKeys returns sorted keys of a string-keyed map.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type nodeKind int

const (
	leafNode nodeKind = iota
	branchNode
)

// localeNode is one node of a parsed locale document. Branch nodes map a
// path segment to a child; leaf nodes hold a translation value that is
// never inspected.
type localeNode struct {
	kind     nodeKind
	children map[string]*localeNode
	value    any
}

// newLocaleNode converts a generic decoded tree into locale nodes. Mappings
// become branches; everything else, including arrays, is a leaf.
func newLocaleNode(v any) *localeNode {
	switch val := v.(type) {
	case map[string]any:
		n := &localeNode{kind: branchNode, children: make(map[string]*localeNode, len(val))}
		for k, child := range val {
			n.children[k] = newLocaleNode(child)
		}
		return n
	case map[any]any:
		// yaml.v3 uses this shape when a mapping has non-string keys.
		n := &localeNode{kind: branchNode, children: make(map[string]*localeNode, len(val))}
		for k, child := range val {
			n.children[fmt.Sprint(k)] = newLocaleNode(child)
		}
		return n
	default:
		return &localeNode{kind: leafNode, value: v}
	}
}

// flattenLocale returns the dotted path of every leaf below node. A leaf
// root yields an empty set.
func flattenLocale(node *localeNode, prefix string) keySet {
	keys := make(keySet)
	flattenInto(node, prefix, keys)
	return keys
}

func flattenInto(node *localeNode, prefix string, keys keySet) {
	if node == nil || node.kind != branchNode {
		return
	}
	for segment, child := range node.children {
		key := segment
		if prefix != "" {
			key = prefix + "." + segment
		}
		if child.kind == branchNode {
			flattenInto(child, key, keys)
		} else {
			keys.add(key)
		}
	}
}

// localeDecoders maps a locale file extension to the decoder for it.
var localeDecoders = map[string]func([]byte, any) error{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// decodeLocale parses a locale document according to the extension of path.
func decodeLocale(path string, data []byte) (*localeNode, error) {
	unmarshal, ok := localeDecoders[filepath.Ext(path)]
	if !ok {
		return nil, &parseError{Path: path, Err: fmt.Errorf("unsupported locale file type %q", filepath.Ext(path))}
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, &parseError{Path: path, Err: err}
	}
	var raw any
	if err := unmarshal([]byte(text), &raw); err != nil {
		return nil, &parseError{Path: path, Err: err}
	}
	return newLocaleNode(raw), nil
}

// loadLocaleKeys reads a locale file and returns the keys it declares.
func loadLocaleKeys(path string) (keySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &missingFileError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	root, err := decodeLocale(path, data)
	if err != nil {
		return nil, err
	}
	return flattenLocale(root, ""), nil
}
