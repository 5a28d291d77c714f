/*
   Copyright imagegate authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package allowlist persists the approved image references as a flat
// text file: one reference per line, '#' starts a comment, entries kept
// sorted so diffs stay reviewable.
package allowlist

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const Filename = "approved-images.txt"

type List struct {
	entries map[string]struct{}
}

func New() *List {
	return &List{entries: map[string]struct{}{}}
}

// Load reads the allowlist at path. A missing file is an empty list,
// not an error, so first runs can bootstrap it.
func Load(path string) (*List, error) {
	l := New()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("failed to read allowlist %s: %w", path, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.entries[line] = struct{}{}
	}
	return l, nil
}

func (l *List) Contains(ref string) bool {
	_, ok := l.entries[strings.TrimSpace(ref)]
	return ok
}

// Add inserts a reference, reporting whether it was new.
func (l *List) Add(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	if _, ok := l.entries[ref]; ok {
		return false
	}
	l.entries[ref] = struct{}{}
	return true
}

// Entries returns the references in sorted order.
func (l *List) Entries() []string {
	out := make([]string, 0, len(l.entries))
	for ref := range l.entries {
		out = append(out, ref)
	}
	sort.Strings(out)
	return out
}

func (l *List) Len() int {
	return len(l.entries)
}

// Save writes the list back to path, sorted, one reference per line.
func (l *List) Save(path string) error {
	var b strings.Builder
	b.WriteString("# approved image references, managed by imagegate\n")
	for _, ref := range l.Entries() {
		b.WriteString(ref)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write allowlist %s: %w", path, err)
	}
	return nil
}
