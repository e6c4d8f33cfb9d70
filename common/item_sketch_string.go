/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// ItemSketchStringHasher hashes string items. The hash is internal to the
// sketch's probing map, so the fast non-seeded xxhash is fine here.
type ItemSketchStringHasher struct{}

// ItemSketchStringSerDe stores string items as a little-endian uint32
// length followed by the UTF-8 bytes. Payloads are validated as UTF-8 on
// deserialization.
type ItemSketchStringSerDe struct{}

func (f ItemSketchStringHasher) Hash(item string) uint64 {
	return xxhash.Sum64String(item)
}

func (f ItemSketchStringSerDe) SizeOf(item string) int {
	return 4 + len(item)
}

func (f ItemSketchStringSerDe) SerializeManyToSlice(items []string) []byte {
	totalLen := 0
	for _, item := range items {
		totalLen += 4 + len(item)
	}
	bytes := make([]byte, totalLen)
	offset := 0
	for _, item := range items {
		binary.LittleEndian.PutUint32(bytes[offset:], uint32(len(item)))
		offset += 4
		copy(bytes[offset:], item)
		offset += len(item)
	}
	return bytes
}

func (f ItemSketchStringSerDe) DeserializeManyFromSlice(mem []byte, offsetBytes int, numItems int) ([]string, error) {
	if numItems == 0 {
		return []string{}, nil
	}
	items := make([]string, 0, numItems)
	for i := 0; i < numItems; i++ {
		if offsetBytes+4 > len(mem) {
			return nil, errors.New("insufficient data (string length)")
		}
		itemLen := int(binary.LittleEndian.Uint32(mem[offsetBytes:]))
		offsetBytes += 4
		if offsetBytes+itemLen > len(mem) {
			return nil, errors.New("insufficient data (string payload)")
		}
		payload := mem[offsetBytes : offsetBytes+itemLen]
		if !utf8.Valid(payload) {
			return nil, fmt.Errorf("invalid UTF-8 string payload")
		}
		items = append(items, string(payload))
		offsetBytes += itemLen
	}
	return items, nil
}
