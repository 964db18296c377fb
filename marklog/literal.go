// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marklog

import (
	"fmt"
	"strconv"
)

// ParseDelegations parses a delegation-count map literal such as
// "{1991: 12, 1994: 3}" into a map from delegate-target id to count.
// An empty map "{}" is valid and yields a nil map.
//
// The accepted grammar is deliberately restricted: integers, and a
// single level of map, list, or set literals whose elements are
// integers. The harness prints these literals in the syntax of its
// implementation language, and evaluating them as expressions would
// turn a corrupt or hostile log line into code execution, so anything
// outside the grammar fails closed. A well-formed list or set is still
// rejected, with a distinct error, because delegation counts must be a
// map.
func ParseDelegations(s string) (map[int64]int64, error) {
	p := &litParser{s: s}
	v, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, p.errorf("trailing data after literal")
	}
	m, ok := v.(delegMap)
	if !ok {
		return nil, fmt.Errorf("delegation literal is not a map")
	}
	return m, nil
}

// A parsed literal is one of delegMap, delegSeq, or delegInt.
type (
	delegMap map[int64]int64
	delegSeq []int64
	delegInt int64
)

type litParser struct {
	s   string
	pos int
}

func (p *litParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("delegation literal at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *litParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next non-space byte without consuming it, or 0 at
// the end of input.
func (p *litParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *litParser) parseLiteral() (interface{}, error) {
	switch c := p.peek(); {
	case c == '{':
		return p.parseBraced()
	case c == '[':
		return p.parseList()
	case c == '-' || c == '+' || '0' <= c && c <= '9':
		n, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		return delegInt(n), nil
	}
	return nil, p.errorf("expected integer, map, list, or set")
}

// parseInt consumes a decimal integer, optionally signed.
func (p *litParser) parseInt() (int64, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.s) && (p.s[p.pos] == '-' || p.s[p.pos] == '+') {
		p.pos++
	}
	digits := 0
	for p.pos < len(p.s) && '0' <= p.s[p.pos] && p.s[p.pos] <= '9' {
		p.pos++
		digits++
	}
	if digits == 0 {
		p.pos = start
		return 0, p.errorf("expected integer")
	}
	n, err := strconv.ParseInt(p.s[start:p.pos], 10, 64)
	if err != nil {
		return 0, p.errorf("%v", err)
	}
	return n, nil
}

// parseBraced parses a "{...}" literal, which is a map if the first
// element is followed by a colon and a set otherwise. "{}" is the
// empty map.
func (p *litParser) parseBraced() (interface{}, error) {
	p.pos++ // '{'
	if p.peek() == '}' {
		p.pos++
		return delegMap(nil), nil
	}
	first, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	if p.peek() != ':' {
		// Set literal.
		elems, err := p.parseTail(first, '}')
		if err != nil {
			return nil, err
		}
		return delegSeq(elems), nil
	}
	// Map literal.
	m := make(delegMap)
	for {
		p.pos++ // ':'
		v, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		m[first] = v
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return m, nil
		default:
			return nil, p.errorf("expected ',' or '}' in map literal")
		}
		if p.peek() == '}' { // trailing comma
			p.pos++
			return m, nil
		}
		if first, err = p.parseInt(); err != nil {
			return nil, err
		}
		if p.peek() != ':' {
			return nil, p.errorf("expected ':' in map literal")
		}
	}
}

// parseList parses a "[...]" literal of integers.
func (p *litParser) parseList() (interface{}, error) {
	p.pos++ // '['
	if p.peek() == ']' {
		p.pos++
		return delegSeq(nil), nil
	}
	first, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	elems, err := p.parseTail(first, ']')
	if err != nil {
		return nil, err
	}
	return delegSeq(elems), nil
}

// parseTail consumes ", elem ... close" after the first element of a
// list or set.
func (p *litParser) parseTail(first int64, close byte) ([]int64, error) {
	elems := []int64{first}
	for {
		switch p.peek() {
		case ',':
			p.pos++
		case close:
			p.pos++
			return elems, nil
		default:
			return nil, p.errorf("expected ',' or %q", string(close))
		}
		if p.peek() == close { // trailing comma
			p.pos++
			return elems, nil
		}
		n, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		elems = append(elems, n)
	}
}
