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

package internal

import "fmt"

// Family identifies a sketch family in the shared binary preamble.
type Family struct {
	Id          int
	MinPreLongs int
	MaxPreLongs int
}

type families struct {
	Theta     Family
	HLL       Family
	Frequency Family
	CountMin  Family
}

var FamilyEnum = &families{
	Theta: Family{
		Id:          3,
		MinPreLongs: 1,
		MaxPreLongs: 3,
	},
	HLL: Family{
		Id:          7,
		MinPreLongs: 1,
		MaxPreLongs: 1,
	},
	Frequency: Family{
		Id:          10,
		MinPreLongs: 1,
		MaxPreLongs: 4,
	},
	CountMin: Family{
		Id:          18,
		MinPreLongs: 2,
		MaxPreLongs: 2,
	},
}

// ValidateId checks the family byte of a serialized image.
func (f Family) ValidateId(actual int) error {
	if actual != f.Id {
		return fmt.Errorf("sketch family mismatch: expected %d, actual %d", f.Id, actual)
	}
	return nil
}

// ValidatePreLongs checks that a preamble-longs byte is within the family range.
func (f Family) ValidatePreLongs(actual int) error {
	if actual < f.MinPreLongs || actual > f.MaxPreLongs {
		return fmt.Errorf("invalid preamble longs: expected [%d, %d], actual %d",
			f.MinPreLongs, f.MaxPreLongs, actual)
	}
	return nil
}
