package vault

import (
	"bytes"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseFrontmatter decodes the YAML block between --- fences at the top of
// a note. A note without a block, or with one that will not decode, is
// treated as carrying no metadata at all.
func parseFrontmatter(data []byte) map[string]any {
	block, ok := frontmatterBlock(data)
	if !ok {
		return nil
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return nil
	}
	return meta
}

// frontmatterBlock returns the bytes between the fences. The opening fence
// must be the first line of the note.
func frontmatterBlock(data []byte) ([]byte, bool) {
	lines := bytes.Split(data, []byte("\n"))
	if len(lines) == 0 || !isFence(string(lines[0])) {
		return nil, false
	}
	for i := 1; i < len(lines); i++ {
		if isFence(string(lines[i])) {
			return bytes.Join(lines[1:i], []byte("\n")), true
		}
	}
	return nil, false
}

func isFence(line string) bool {
	return strings.TrimSuffix(line, "\r") == "---"
}

// Pair is one frontmatter property to write.
type Pair struct {
	Key   string
	Value string
}

// upsertFrontmatter rewrites the values of the given keys inside the
// note's frontmatter and touches nothing else, so user formatting and the
// rest of the metadata survive byte for byte. Missing keys are added just
// above the closing fence in the order given. A note without frontmatter
// gains a minimal block. Line endings follow the surrounding file.
func upsertFrontmatter(data []byte, pairs []Pair) []byte {
	lines := strings.Split(string(data), "\n")
	if !isFence(lines[0]) {
		return prependBlock(data, pairs)
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if isFence(lines[i]) {
			end = i
			break
		}
	}
	if end < 0 {
		// An opening fence that never closes is not frontmatter.
		return prependBlock(data, pairs)
	}

	replaced := make(map[string]bool, len(pairs))
	for i := 1; i < end; i++ {
		line := strings.TrimSuffix(lines[i], "\r")
		crlf := line != lines[i]
		for _, p := range pairs {
			if !keyAt(line, p.Key) {
				continue
			}
			next := p.Key + ": " + p.Value
			if crlf {
				next += "\r"
			}
			lines[i] = next
			replaced[p.Key] = true
			break
		}
	}

	crlf := strings.HasSuffix(lines[end], "\r")
	var missing []string
	for _, p := range pairs {
		if replaced[p.Key] {
			continue
		}
		line := p.Key + ": " + p.Value
		if crlf {
			line += "\r"
		}
		missing = append(missing, line)
	}
	if len(missing) > 0 {
		lines = slices.Insert(lines, end, missing...)
	}
	return []byte(strings.Join(lines, "\n"))
}

func prependBlock(data []byte, pairs []Pair) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	for _, p := range pairs {
		b.WriteString(p.Key + ": " + p.Value + "\n")
	}
	b.WriteString("---\n")
	b.Write(data)
	return []byte(b.String())
}

// keyAt reports whether the line sets key at column zero, so nested keys
// with the same name are left alone.
func keyAt(line, key string) bool {
	if !strings.HasPrefix(line, key) {
		return false
	}
	return strings.HasPrefix(line[len(key):], ":")
}
