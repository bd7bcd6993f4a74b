package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zlib"

	"github.com/factorio-tools/bpeditor/internal/blueprint"
)

// versionByte prefixes every exchange string. The game has only ever
// shipped version '0'.
const versionByte = '0'

var (
	// ErrEmpty indicates an empty exchange string.
	ErrEmpty = errors.New("codec: empty exchange string")
	// ErrVersion indicates an unsupported leading version byte.
	ErrVersion = errors.New("codec: unsupported exchange string version")
	// ErrEnvelope indicates decoded JSON that is neither a blueprint nor a
	// blueprint book envelope.
	ErrEnvelope = errors.New("codec: unrecognized document envelope")
)

// Kind names the document type carried by an exchange string.
type Kind string

const (
	KindBlueprint Kind = "blueprint"
	KindBook      Kind = "blueprint_book"
)

// envelope is the single-key wrapper around every exported document.
type envelope struct {
	Blueprint *blueprint.Blueprint     `json:"blueprint,omitempty"`
	Book      *blueprint.BlueprintBook `json:"blueprint_book,omitempty"`
}

// Encode serializes a blueprint into an exchange string.
func Encode(bp *blueprint.Blueprint) (string, error) {
	return encodeEnvelope(envelope{Blueprint: bp})
}

// EncodeBook serializes a blueprint book into an exchange string.
func EncodeBook(book *blueprint.BlueprintBook) (string, error) {
	return encodeEnvelope(envelope{Book: book})
}

func encodeEnvelope(env envelope) (string, error) {
	raw, err := sonic.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("init compressor: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("compress document: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compress document: %w", err)
	}

	return string(versionByte) + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses an exchange string that must contain a single blueprint.
func Decode(s string) (*blueprint.Blueprint, error) {
	env, err := decodeEnvelope(s)
	if err != nil {
		return nil, err
	}
	if env.Blueprint == nil {
		return nil, fmt.Errorf("%w: expected a blueprint", ErrEnvelope)
	}
	return env.Blueprint, nil
}

// DecodeBook parses an exchange string that must contain a blueprint book.
func DecodeBook(s string) (*blueprint.BlueprintBook, error) {
	env, err := decodeEnvelope(s)
	if err != nil {
		return nil, err
	}
	if env.Book == nil {
		return nil, fmt.Errorf("%w: expected a blueprint book", ErrEnvelope)
	}
	return env.Book, nil
}

// DecodeAny parses an exchange string of either kind and reports which one
// it found.
func DecodeAny(s string) (*blueprint.Blueprint, *blueprint.BlueprintBook, Kind, error) {
	env, err := decodeEnvelope(s)
	if err != nil {
		return nil, nil, "", err
	}
	switch {
	case env.Blueprint != nil:
		return env.Blueprint, nil, KindBlueprint, nil
	case env.Book != nil:
		return nil, env.Book, KindBook, nil
	default:
		return nil, nil, "", ErrEnvelope
	}
}

// Sniff reports the document kind without retaining the decoded document.
func Sniff(s string) (Kind, error) {
	_, _, kind, err := DecodeAny(s)
	return kind, err
}

func decodeEnvelope(s string) (envelope, error) {
	var env envelope

	if s == "" {
		return env, ErrEmpty
	}
	if s[0] != versionByte {
		return env, fmt.Errorf("%w: %q", ErrVersion, s[0])
	}

	compressed, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return env, fmt.Errorf("decode base64: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return env, fmt.Errorf("open zlib stream: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return env, fmt.Errorf("decompress document: %w", err)
	}

	if err := sonic.Unmarshal(raw, &env); err != nil {
		return env, fmt.Errorf("unmarshal document: %w", err)
	}
	if env.Blueprint == nil && env.Book == nil {
		return env, ErrEnvelope
	}
	return env, nil
}
