// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package quote

import "unicode/utf8"

var builtin = []struct{ content, author string }{
	{"Shall I compare thee to a summer's day? Thou art more lovely and more temperate.", "William Shakespeare"},
	{"The only thing we have to fear is fear itself.", "Franklin D. Roosevelt"},
	{"Simplicity is prerequisite for reliability.", "Edsger W. Dijkstra"},
	{"It is a capital mistake to theorize before one has data.", "Arthur Conan Doyle"},
	{"Not all those who wander are lost.", "J. R. R. Tolkien"},
	{"Hope is the thing with feathers that perches in the soul.", "Emily Dickinson"},
	{"Well begun is half done.", "Aristotle"},
	{"Whatever you are, be a good one.", "Abraham Lincoln"},
	{"The best way out is always through.", "Robert Frost"},
	{"Talk is cheap. Show me the code.", "Linus Torvalds"},
}

// Builtin returns a fresh copy of the built-in list.
func Builtin() []Quote {
	quotes := make([]Quote, len(builtin))
	for i, b := range builtin {
		quotes[i] = Quote{
			Content: b.content,
			Author:  b.author,
			Length:  utf8.RuneCountInString(b.content),
		}
	}
	return quotes
}
