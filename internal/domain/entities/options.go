package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidOptionPath = errors.New("invalid option path")
	ErrNilOptions        = errors.New("nil options")
)

// Options is the hash representation of the gateway request parameters.
//
// Nested sections are Options (or plain map[string]any, which is accepted
// everywhere for callers decoding JSON). Example: the "payment.differedActionDate"
// parameter is represented as
//
//	Options{"payment": Options{"differedActionDate": "24/03/2026"}}
type Options map[string]any

// ParseOptionPath turns "a.b", "[a][b]" or a mix like "a[b].c" into the
// sequence of keys to walk.
func ParseOptionPath(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidOptionPath)
	}

	var (
		keys      []string
		current   strings.Builder
		inBracket bool
		// set after "]" so that "[a].b" and "[a][b]" do not produce empty keys
		closed bool
	)

	flush := func() error {
		if current.Len() == 0 {
			if closed {
				return nil
			}
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidOptionPath, path)
		}
		keys = append(keys, current.String())
		current.Reset()
		return nil
	}

	for i, r := range path {
		switch r {
		case '[':
			if inBracket {
				return nil, fmt.Errorf("%w: nested bracket at %d in %q", ErrInvalidOptionPath, i, path)
			}
			if current.Len() > 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			inBracket = true
			closed = false
		case ']':
			if !inBracket {
				return nil, fmt.Errorf("%w: unexpected ']' at %d in %q", ErrInvalidOptionPath, i, path)
			}
			closed = false
			if err := flush(); err != nil {
				return nil, err
			}
			inBracket = false
			closed = true
		case '.':
			if inBracket {
				current.WriteRune(r)
				continue
			}
			if err := flush(); err != nil {
				return nil, err
			}
			closed = false
		default:
			current.WriteRune(r)
		}
	}

	if inBracket {
		return nil, fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidOptionPath, path)
	}
	if current.Len() > 0 {
		keys = append(keys, current.String())
	} else if !closed {
		return nil, fmt.Errorf("%w: trailing separator in %q", ErrInvalidOptionPath, path)
	}

	return keys, nil
}

// Set assigns value at path, creating intermediate sections as needed.
// Sibling keys already present at any level are left untouched. A nil
// receiver cannot be written to and yields ErrNilOptions.
func (o Options) Set(path string, value any) error {
	if o == nil {
		return ErrNilOptions
	}
	keys, err := ParseOptionPath(path)
	if err != nil {
		return err
	}

	node := o
	for i, key := range keys[:len(keys)-1] {
		next, ok := node[key]
		if !ok || next == nil {
			child := Options{}
			node[key] = child
			node = child
			continue
		}
		child, ok := asOptions(next)
		if !ok {
			return fmt.Errorf("%w: %q is not a section", ErrInvalidOptionPath, strings.Join(keys[:i+1], "."))
		}
		// plain maps are converted in place so later writes land in the tree
		node[key] = child
		node = child
	}

	node[keys[len(keys)-1]] = value
	return nil
}

// Get returns the value stored at path.
func (o Options) Get(path string) (any, bool) {
	keys, err := ParseOptionPath(path)
	if err != nil {
		return nil, false
	}
	return lookup(o, keys)
}

func lookup(node map[string]any, keys []string) (any, bool) {
	var current any = node
	for _, key := range keys {
		section, ok := asOptions(current)
		if !ok {
			return nil, false
		}
		current, ok = section[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Clone returns a deep copy; nested sections are copied as Options. Lists of
// sections keep their slice type.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Options:
		return t.Clone()
	case map[string]any:
		return Options(t).Clone()
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, item := range t {
			out[i] = Options(item).Clone()
		}
		return out
	case []Options:
		out := make([]Options, len(t))
		for i, item := range t {
			out[i] = item.Clone()
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// DeepMerge merges overlay on top of base and returns a new tree.
//
// When both sides hold a section under the same key the merge recurses, so
// siblings from both sides are kept. Any other conflict is a leaf conflict and
// overlay wins. Neither input is modified.
func DeepMerge(base, overlay Options) Options {
	out := base.Clone()
	if out == nil {
		out = Options{}
	}
	for k, v := range overlay {
		overlaySection, overlayIsSection := asOptions(v)
		baseSection, baseIsSection := asOptions(out[k])
		switch {
		case overlayIsSection && baseIsSection:
			out[k] = DeepMerge(baseSection, overlaySection)
		case overlayIsSection:
			out[k] = overlaySection.Clone()
		default:
			out[k] = cloneValue(v)
		}
	}
	return out
}

func asOptions(v any) (Options, bool) {
	switch t := v.(type) {
	case Options:
		return t, true
	case map[string]any:
		return Options(t), true
	default:
		return nil, false
	}
}
