package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/vagran/dxfmatch"
	"github.com/vagran/dxfmatch/token"
)

type decompressed struct {
	io.Reader
	close func() error
}

func (d decompressed) Close() error {
	return d.close()
}

// openStream opens a tag-stream file, transparently decompressing .gz and
// .zst inputs.
func openStream(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return decompressed{zr, func() error {
			zr.Close()
			return f.Close()
		}}, nil

	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return decompressed{zr, func() error {
			zr.Close()
			return f.Close()
		}}, nil

	default:
		return f, nil
	}
}

// readTags reads the code line / value line pairs of a tag stream and
// converts them to typed tokens.
func readTags(name string, r io.Reader, diags dxfmatch.DiagSink) ([]token.Token, error) {
	var out []token.Token
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		codeText := strings.TrimSpace(sc.Text())
		if codeText == "" {
			continue
		}
		code, err := strconv.Atoi(codeText)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: group code expected, got %q", name, line, codeText)
		}

		if !sc.Scan() {
			return nil, fmt.Errorf("%s:%d: group code %d has no value line", name, line, code)
		}
		line++
		value := strings.TrimRight(sc.Text(), "\r")

		t, err := token.Parse(code, value, diags)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		out = append(out, t)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}
