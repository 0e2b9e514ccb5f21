package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

// jsSeeds are small programs covering every token class of the lexer.
var jsSeeds = []string{
	"",
	"#!/usr/bin/env node\nlet x = 0x1F_FFn + .5e-3;\n",
	"if (a?.b ?? c) { return `x` } else /* c */ throw new Error('e\\n');\r\n",
	"const \\u0061bc = \"\\u{1F600}\"; a >>>= b ** 2; // end",
	"class A { #p = 1; static { this.#p++ } }",
	"'unterminated\n0b102 1__0 \"\\x4\" /* open",
	"x\u00a0=\ufeff1 \u2028 y",
}

func addSeeds(f *testing.F, ext string, extra []string) {
	for _, s := range extra {
		f.Add([]byte(s))
	}
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все файлы с нужным расширением
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(src []byte, n int) []byte {
	if len(src) <= n {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:n]...)
}
