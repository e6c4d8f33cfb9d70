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

package theta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashtableInsertAndFind(t *testing.T) {
	table := NewHashtable(5, 5, ResizeX2, 1.0, MaxTheta, DefaultSeed, true)

	index, err := table.Find(12345)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	table.Insert(index, 12345)

	index2, err := table.Find(12345)
	require.NoError(t, err)
	assert.Equal(t, index, index2)
	assert.Equal(t, uint32(1), table.numEntries)
}

func TestHashtableScreen(t *testing.T) {
	table := NewHashtable(5, 5, ResizeX2, 1.0, MaxTheta, DefaultSeed, true)

	hash, err := table.HashInt64AndScreen(42)
	require.NoError(t, err)
	assert.Greater(t, hash, uint64(0))
	assert.Less(t, hash, table.theta)
	assert.False(t, table.isEmpty)

	// shrink theta so every hash is rejected
	table.theta = 1
	_, err = table.HashInt64AndScreen(43)
	assert.ErrorIs(t, err, ErrHashExceedsTheta)
}

func TestHashtableRebuildShrinksTheta(t *testing.T) {
	table := NewHashtable(6, 5, ResizeX2, 1.0, MaxTheta, DefaultSeed, true)

	inserted := 0
	for i := int64(0); inserted < 100; i++ {
		hash, err := table.HashInt64AndScreen(i)
		if err != nil {
			continue
		}
		index, err := table.Find(hash)
		if err == ErrKeyNotFound {
			table.Insert(index, hash)
			inserted++
		}
	}

	assert.Less(t, table.theta, MaxTheta)
	assert.LessOrEqual(t, table.numEntries, uint32(60))
	for _, e := range table.entries {
		if e != 0 {
			assert.Less(t, e, table.theta)
		}
	}
}

func TestHashtableCopy(t *testing.T) {
	table := NewHashtable(5, 5, ResizeX2, 1.0, MaxTheta, DefaultSeed, true)
	hash, err := table.HashInt64AndScreen(1)
	require.NoError(t, err)
	index, _ := table.Find(hash)
	table.Insert(index, hash)

	c := table.Copy()
	assert.Equal(t, table.numEntries, c.numEntries)
	assert.Equal(t, table.entries, c.entries)

	c.entries[index] = 0
	assert.NotEqual(t, table.entries[index], c.entries[index])
}
