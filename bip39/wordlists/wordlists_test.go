// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestGetUnknownLanguage(t *testing.T) {
	if _, err := Get("klingon"); err == nil {
		t.Fatal("Get(\"klingon\") succeeded, want an error")
	}
}

func TestGetUnavailableLanguageFailsClosed(t *testing.T) {
	lang, err := Get("french")
	if err != nil {
		t.Fatalf("Get(\"french\"): %v", err)
	}
	if _, err := lang.LookupWord(0); !errors.As(err, new(*ErrLanguageUnavailable)) {
		t.Fatalf("LookupWord on unloaded french dictionary = %v, want *ErrLanguageUnavailable", err)
	}
	if _, err := lang.LookupMnemonic("bonjour"); !errors.As(err, new(*ErrLanguageUnavailable)) {
		t.Fatalf("LookupMnemonic on unloaded french dictionary = %v, want *ErrLanguageUnavailable", err)
	}
}

func TestLoadWordlistRejectsWrongCount(t *testing.T) {
	short := strings.NewReader("one\ntwo\nthree\n")
	if _, err := LoadWordlist("test-short", " ", false, short); err == nil {
		t.Fatal("LoadWordlist with 3 words succeeded, want an error")
	}

	var sb strings.Builder
	for i := 0; i < 2049; i++ {
		sb.WriteString("word")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\n')
	}
	if _, err := LoadWordlist("test-long", " ", false, strings.NewReader(sb.String())); err == nil {
		t.Fatal("LoadWordlist with 2049 words succeeded, want an error")
	}
}

func TestLoadWordlistRejectsDuplicates(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2047; i++ {
		sb.WriteString("word")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\n')
	}
	sb.WriteString("word0\n")
	if _, err := LoadWordlist("test-dup", " ", false, strings.NewReader(sb.String())); err == nil {
		t.Fatal("LoadWordlist with a duplicate word succeeded, want an error")
	}
}

func TestLoadWordlistAndRegisterDictionary(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2048; i++ {
		sb.WriteString("word")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\n')
	}
	dict, err := LoadWordlist("test-lang", " ", false, strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("LoadWordlist: %v", err)
	}

	registryMu.Lock()
	registry["test-lang"] = newUnavailable("test-lang", " ", false)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		delete(registry, "test-lang")
		registryMu.Unlock()
	})

	RegisterDictionary("test-lang", dict)

	lang, err := Get("test-lang")
	if err != nil {
		t.Fatalf("Get(\"test-lang\"): %v", err)
	}
	word, err := lang.LookupWord(0)
	if err != nil {
		t.Fatalf("LookupWord(0): %v", err)
	}
	if word != "word0" {
		t.Fatalf("LookupWord(0) = %q, want %q", word, "word0")
	}
	idx, err := lang.LookupMnemonic("word2047")
	if err != nil {
		t.Fatalf("LookupMnemonic(\"word2047\"): %v", err)
	}
	if idx != 2047 {
		t.Fatalf("LookupMnemonic(\"word2047\") = %d, want 2047", idx)
	}
}

func TestRegisterDictionaryUnknownLanguagePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("RegisterDictionary on an unknown name did not panic")
		}
	}()
	RegisterDictionary("atlantean", english)
}
