// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrWordNotFound is returned by Language.LookupMnemonic when a word does
// not appear in the dictionary.
var ErrWordNotFound = errors.New("wordlists: word not found in dictionary")

// Language is a BIP39 dictionary: a name, a word separator, and the
// index<->word mapping for one of the eight built-in wordlists.
type Language interface {
	// Name returns the language's identifying name, e.g. "english".
	Name() string
	// Separator returns the single codepoint joining words in a phrase.
	Separator() string
	// LookupMnemonic returns the word index for word, or ErrWordNotFound.
	LookupMnemonic(word string) (uint16, error)
	// LookupWord returns the word at index, or an error if index is out
	// of the dictionary's range.
	LookupWord(index uint16) (string, error)
	// Split breaks phrase into its constituent words, normalising the
	// phrase first if the language requires it.
	Split(phrase string) ([]string, error)
}

// DefaultDictionary implements Language over a fixed [2048]string wordlist.
// All languages but Japanese use a plain space separator and perform no
// normalisation, matching how mnemonic phrases are conventionally compared.
// Japanese instead separates words with the ideographic space (U+3000) and
// compares phrases in NFKD form, so that dakuten/combining variants of the
// same word are treated identically.
type DefaultDictionary struct {
	name      string
	separator string
	nfkd      bool
	words     [2048]string
	index     map[string]uint16
}

// NewDefaultDictionary builds a DefaultDictionary named name over words,
// using sep as the word separator. If nfkd is true, phrases are NFKD
// normalised before splitting and lookup (Japanese's requirement).
func NewDefaultDictionary(name, sep string, nfkd bool, words [2048]string) *DefaultDictionary {
	d := &DefaultDictionary{
		name:      name,
		separator: sep,
		nfkd:      nfkd,
		words:     words,
		index:     make(map[string]uint16, len(words)),
	}
	for i, w := range words {
		key := w
		if nfkd {
			key = norm.NFKD.String(key)
		}
		d.index[key] = uint16(i)
	}
	return d
}

func (d *DefaultDictionary) Name() string      { return d.name }
func (d *DefaultDictionary) Separator() string { return d.separator }

func (d *DefaultDictionary) LookupMnemonic(word string) (uint16, error) {
	key := word
	if d.nfkd {
		key = norm.NFKD.String(key)
	}
	idx, ok := d.index[key]
	if !ok {
		return 0, ErrWordNotFound
	}
	return idx, nil
}

func (d *DefaultDictionary) LookupWord(index uint16) (string, error) {
	if int(index) >= len(d.words) {
		return "", fmt.Errorf("wordlists: index %d out of range for %s", index, d.name)
	}
	return d.words[index], nil
}

func (d *DefaultDictionary) Split(phrase string) ([]string, error) {
	if d.nfkd {
		phrase = norm.NFKD.String(phrase)
	}
	return strings.Split(phrase, d.separator), nil
}
