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

package bitpack

// Unrolled packers for 8-value blocks. One function per bit width;
// the byte patterns follow mechanically from the MSB-first layout.

func packBlock1(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] << 7)
	bytes[0] |= uint8(values[1] << 6)
	bytes[0] |= uint8(values[2] << 5)
	bytes[0] |= uint8(values[3] << 4)
	bytes[0] |= uint8(values[4] << 3)
	bytes[0] |= uint8(values[5] << 2)
	bytes[0] |= uint8(values[6] << 1)
	bytes[0] |= uint8(values[7])
}

func packBlock2(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] << 6)
	bytes[0] |= uint8(values[1] << 4)
	bytes[0] |= uint8(values[2] << 2)
	bytes[0] |= uint8(values[3])

	bytes[1] = uint8(values[4] << 6)
	bytes[1] |= uint8(values[5] << 4)
	bytes[1] |= uint8(values[6] << 2)
	bytes[1] |= uint8(values[7])
}

func packBlock3(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] << 5)
	bytes[0] |= uint8(values[1] << 2)
	bytes[0] |= uint8(values[2] >> 1)

	bytes[1] = uint8(values[2] << 7)
	bytes[1] |= uint8(values[3] << 4)
	bytes[1] |= uint8(values[4] << 1)
	bytes[1] |= uint8(values[5] >> 2)

	bytes[2] = uint8(values[5] << 6)
	bytes[2] |= uint8(values[6] << 3)
	bytes[2] |= uint8(values[7])
}

func packBlock4(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] << 4)
	bytes[0] |= uint8(values[1])

	bytes[1] = uint8(values[2] << 4)
	bytes[1] |= uint8(values[3])

	bytes[2] = uint8(values[4] << 4)
	bytes[2] |= uint8(values[5])

	bytes[3] = uint8(values[6] << 4)
	bytes[3] |= uint8(values[7])
}

func packBlock5(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] << 3)
	bytes[0] |= uint8(values[1] >> 2)

	bytes[1] = uint8(values[1] << 6)
	bytes[1] |= uint8(values[2] << 1)
	bytes[1] |= uint8(values[3] >> 4)

	bytes[2] = uint8(values[3] << 4)
	bytes[2] |= uint8(values[4] >> 1)

	bytes[3] = uint8(values[4] << 7)
	bytes[3] |= uint8(values[5] << 2)
	bytes[3] |= uint8(values[6] >> 3)

	bytes[4] = uint8(values[6] << 5)
	bytes[4] |= uint8(values[7])
}

func packBlock6(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] << 2)
	bytes[0] |= uint8(values[1] >> 4)

	bytes[1] = uint8(values[1] << 4)
	bytes[1] |= uint8(values[2] >> 2)

	bytes[2] = uint8(values[2] << 6)
	bytes[2] |= uint8(values[3])

	bytes[3] = uint8(values[4] << 2)
	bytes[3] |= uint8(values[5] >> 4)

	bytes[4] = uint8(values[5] << 4)
	bytes[4] |= uint8(values[6] >> 2)

	bytes[5] = uint8(values[6] << 6)
	bytes[5] |= uint8(values[7])
}

func packBlock7(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] << 1)
	bytes[0] |= uint8(values[1] >> 6)

	bytes[1] = uint8(values[1] << 2)
	bytes[1] |= uint8(values[2] >> 5)

	bytes[2] = uint8(values[2] << 3)
	bytes[2] |= uint8(values[3] >> 4)

	bytes[3] = uint8(values[3] << 4)
	bytes[3] |= uint8(values[4] >> 3)

	bytes[4] = uint8(values[4] << 5)
	bytes[4] |= uint8(values[5] >> 2)

	bytes[5] = uint8(values[5] << 6)
	bytes[5] |= uint8(values[6] >> 1)

	bytes[6] = uint8(values[6] << 7)
	bytes[6] |= uint8(values[7])
}

func packBlock8(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0])

	bytes[1] = uint8(values[1])

	bytes[2] = uint8(values[2])

	bytes[3] = uint8(values[3])

	bytes[4] = uint8(values[4])

	bytes[5] = uint8(values[5])

	bytes[6] = uint8(values[6])

	bytes[7] = uint8(values[7])
}

func packBlock9(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 1)

	bytes[1] = uint8(values[0] << 7)
	bytes[1] |= uint8(values[1] >> 2)

	bytes[2] = uint8(values[1] << 6)
	bytes[2] |= uint8(values[2] >> 3)

	bytes[3] = uint8(values[2] << 5)
	bytes[3] |= uint8(values[3] >> 4)

	bytes[4] = uint8(values[3] << 4)
	bytes[4] |= uint8(values[4] >> 5)

	bytes[5] = uint8(values[4] << 3)
	bytes[5] |= uint8(values[5] >> 6)

	bytes[6] = uint8(values[5] << 2)
	bytes[6] |= uint8(values[6] >> 7)

	bytes[7] = uint8(values[6] << 1)
	bytes[7] |= uint8(values[7] >> 8)

	bytes[8] = uint8(values[7])
}

func packBlock10(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 2)

	bytes[1] = uint8(values[0] << 6)
	bytes[1] |= uint8(values[1] >> 4)

	bytes[2] = uint8(values[1] << 4)
	bytes[2] |= uint8(values[2] >> 6)

	bytes[3] = uint8(values[2] << 2)
	bytes[3] |= uint8(values[3] >> 8)

	bytes[4] = uint8(values[3])

	bytes[5] = uint8(values[4] >> 2)

	bytes[6] = uint8(values[4] << 6)
	bytes[6] |= uint8(values[5] >> 4)

	bytes[7] = uint8(values[5] << 4)
	bytes[7] |= uint8(values[6] >> 6)

	bytes[8] = uint8(values[6] << 2)
	bytes[8] |= uint8(values[7] >> 8)

	bytes[9] = uint8(values[7])
}

func packBlock11(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 3)

	bytes[1] = uint8(values[0] << 5)
	bytes[1] |= uint8(values[1] >> 6)

	bytes[2] = uint8(values[1] << 2)
	bytes[2] |= uint8(values[2] >> 9)

	bytes[3] = uint8(values[2] >> 1)

	bytes[4] = uint8(values[2] << 7)
	bytes[4] |= uint8(values[3] >> 4)

	bytes[5] = uint8(values[3] << 4)
	bytes[5] |= uint8(values[4] >> 7)

	bytes[6] = uint8(values[4] << 1)
	bytes[6] |= uint8(values[5] >> 10)

	bytes[7] = uint8(values[5] >> 2)

	bytes[8] = uint8(values[5] << 6)
	bytes[8] |= uint8(values[6] >> 5)

	bytes[9] = uint8(values[6] << 3)
	bytes[9] |= uint8(values[7] >> 8)

	bytes[10] = uint8(values[7])
}

func packBlock12(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 4)

	bytes[1] = uint8(values[0] << 4)
	bytes[1] |= uint8(values[1] >> 8)

	bytes[2] = uint8(values[1])

	bytes[3] = uint8(values[2] >> 4)

	bytes[4] = uint8(values[2] << 4)
	bytes[4] |= uint8(values[3] >> 8)

	bytes[5] = uint8(values[3])

	bytes[6] = uint8(values[4] >> 4)

	bytes[7] = uint8(values[4] << 4)
	bytes[7] |= uint8(values[5] >> 8)

	bytes[8] = uint8(values[5])

	bytes[9] = uint8(values[6] >> 4)

	bytes[10] = uint8(values[6] << 4)
	bytes[10] |= uint8(values[7] >> 8)

	bytes[11] = uint8(values[7])
}

func packBlock13(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 5)

	bytes[1] = uint8(values[0] << 3)
	bytes[1] |= uint8(values[1] >> 10)

	bytes[2] = uint8(values[1] >> 2)

	bytes[3] = uint8(values[1] << 6)
	bytes[3] |= uint8(values[2] >> 7)

	bytes[4] = uint8(values[2] << 1)
	bytes[4] |= uint8(values[3] >> 12)

	bytes[5] = uint8(values[3] >> 4)

	bytes[6] = uint8(values[3] << 4)
	bytes[6] |= uint8(values[4] >> 9)

	bytes[7] = uint8(values[4] >> 1)

	bytes[8] = uint8(values[4] << 7)
	bytes[8] |= uint8(values[5] >> 6)

	bytes[9] = uint8(values[5] << 2)
	bytes[9] |= uint8(values[6] >> 11)

	bytes[10] = uint8(values[6] >> 3)

	bytes[11] = uint8(values[6] << 5)
	bytes[11] |= uint8(values[7] >> 8)

	bytes[12] = uint8(values[7])
}

func packBlock14(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 6)

	bytes[1] = uint8(values[0] << 2)
	bytes[1] |= uint8(values[1] >> 12)

	bytes[2] = uint8(values[1] >> 4)

	bytes[3] = uint8(values[1] << 4)
	bytes[3] |= uint8(values[2] >> 10)

	bytes[4] = uint8(values[2] >> 2)

	bytes[5] = uint8(values[2] << 6)
	bytes[5] |= uint8(values[3] >> 8)

	bytes[6] = uint8(values[3])

	bytes[7] = uint8(values[4] >> 6)

	bytes[8] = uint8(values[4] << 2)
	bytes[8] |= uint8(values[5] >> 12)

	bytes[9] = uint8(values[5] >> 4)

	bytes[10] = uint8(values[5] << 4)
	bytes[10] |= uint8(values[6] >> 10)

	bytes[11] = uint8(values[6] >> 2)

	bytes[12] = uint8(values[6] << 6)
	bytes[12] |= uint8(values[7] >> 8)

	bytes[13] = uint8(values[7])
}

func packBlock15(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 7)

	bytes[1] = uint8(values[0] << 1)
	bytes[1] |= uint8(values[1] >> 14)

	bytes[2] = uint8(values[1] >> 6)

	bytes[3] = uint8(values[1] << 2)
	bytes[3] |= uint8(values[2] >> 13)

	bytes[4] = uint8(values[2] >> 5)

	bytes[5] = uint8(values[2] << 3)
	bytes[5] |= uint8(values[3] >> 12)

	bytes[6] = uint8(values[3] >> 4)

	bytes[7] = uint8(values[3] << 4)
	bytes[7] |= uint8(values[4] >> 11)

	bytes[8] = uint8(values[4] >> 3)

	bytes[9] = uint8(values[4] << 5)
	bytes[9] |= uint8(values[5] >> 10)

	bytes[10] = uint8(values[5] >> 2)

	bytes[11] = uint8(values[5] << 6)
	bytes[11] |= uint8(values[6] >> 9)

	bytes[12] = uint8(values[6] >> 1)

	bytes[13] = uint8(values[6] << 7)
	bytes[13] |= uint8(values[7] >> 8)

	bytes[14] = uint8(values[7])
}

func packBlock16(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 8)

	bytes[1] = uint8(values[0])

	bytes[2] = uint8(values[1] >> 8)

	bytes[3] = uint8(values[1])

	bytes[4] = uint8(values[2] >> 8)

	bytes[5] = uint8(values[2])

	bytes[6] = uint8(values[3] >> 8)

	bytes[7] = uint8(values[3])

	bytes[8] = uint8(values[4] >> 8)

	bytes[9] = uint8(values[4])

	bytes[10] = uint8(values[5] >> 8)

	bytes[11] = uint8(values[5])

	bytes[12] = uint8(values[6] >> 8)

	bytes[13] = uint8(values[6])

	bytes[14] = uint8(values[7] >> 8)

	bytes[15] = uint8(values[7])
}

func packBlock17(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 9)

	bytes[1] = uint8(values[0] >> 1)

	bytes[2] = uint8(values[0] << 7)
	bytes[2] |= uint8(values[1] >> 10)

	bytes[3] = uint8(values[1] >> 2)

	bytes[4] = uint8(values[1] << 6)
	bytes[4] |= uint8(values[2] >> 11)

	bytes[5] = uint8(values[2] >> 3)

	bytes[6] = uint8(values[2] << 5)
	bytes[6] |= uint8(values[3] >> 12)

	bytes[7] = uint8(values[3] >> 4)

	bytes[8] = uint8(values[3] << 4)
	bytes[8] |= uint8(values[4] >> 13)

	bytes[9] = uint8(values[4] >> 5)

	bytes[10] = uint8(values[4] << 3)
	bytes[10] |= uint8(values[5] >> 14)

	bytes[11] = uint8(values[5] >> 6)

	bytes[12] = uint8(values[5] << 2)
	bytes[12] |= uint8(values[6] >> 15)

	bytes[13] = uint8(values[6] >> 7)

	bytes[14] = uint8(values[6] << 1)
	bytes[14] |= uint8(values[7] >> 16)

	bytes[15] = uint8(values[7] >> 8)

	bytes[16] = uint8(values[7])
}

func packBlock18(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 10)

	bytes[1] = uint8(values[0] >> 2)

	bytes[2] = uint8(values[0] << 6)
	bytes[2] |= uint8(values[1] >> 12)

	bytes[3] = uint8(values[1] >> 4)

	bytes[4] = uint8(values[1] << 4)
	bytes[4] |= uint8(values[2] >> 14)

	bytes[5] = uint8(values[2] >> 6)

	bytes[6] = uint8(values[2] << 2)
	bytes[6] |= uint8(values[3] >> 16)

	bytes[7] = uint8(values[3] >> 8)

	bytes[8] = uint8(values[3])

	bytes[9] = uint8(values[4] >> 10)

	bytes[10] = uint8(values[4] >> 2)

	bytes[11] = uint8(values[4] << 6)
	bytes[11] |= uint8(values[5] >> 12)

	bytes[12] = uint8(values[5] >> 4)

	bytes[13] = uint8(values[5] << 4)
	bytes[13] |= uint8(values[6] >> 14)

	bytes[14] = uint8(values[6] >> 6)

	bytes[15] = uint8(values[6] << 2)
	bytes[15] |= uint8(values[7] >> 16)

	bytes[16] = uint8(values[7] >> 8)

	bytes[17] = uint8(values[7])
}

func packBlock19(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 11)

	bytes[1] = uint8(values[0] >> 3)

	bytes[2] = uint8(values[0] << 5)
	bytes[2] |= uint8(values[1] >> 14)

	bytes[3] = uint8(values[1] >> 6)

	bytes[4] = uint8(values[1] << 2)
	bytes[4] |= uint8(values[2] >> 17)

	bytes[5] = uint8(values[2] >> 9)

	bytes[6] = uint8(values[2] >> 1)

	bytes[7] = uint8(values[2] << 7)
	bytes[7] |= uint8(values[3] >> 12)

	bytes[8] = uint8(values[3] >> 4)

	bytes[9] = uint8(values[3] << 4)
	bytes[9] |= uint8(values[4] >> 15)

	bytes[10] = uint8(values[4] >> 7)

	bytes[11] = uint8(values[4] << 1)
	bytes[11] |= uint8(values[5] >> 18)

	bytes[12] = uint8(values[5] >> 10)

	bytes[13] = uint8(values[5] >> 2)

	bytes[14] = uint8(values[5] << 6)
	bytes[14] |= uint8(values[6] >> 13)

	bytes[15] = uint8(values[6] >> 5)

	bytes[16] = uint8(values[6] << 3)
	bytes[16] |= uint8(values[7] >> 16)

	bytes[17] = uint8(values[7] >> 8)

	bytes[18] = uint8(values[7])
}

func packBlock20(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 12)

	bytes[1] = uint8(values[0] >> 4)

	bytes[2] = uint8(values[0] << 4)
	bytes[2] |= uint8(values[1] >> 16)

	bytes[3] = uint8(values[1] >> 8)

	bytes[4] = uint8(values[1])

	bytes[5] = uint8(values[2] >> 12)

	bytes[6] = uint8(values[2] >> 4)

	bytes[7] = uint8(values[2] << 4)
	bytes[7] |= uint8(values[3] >> 16)

	bytes[8] = uint8(values[3] >> 8)

	bytes[9] = uint8(values[3])

	bytes[10] = uint8(values[4] >> 12)

	bytes[11] = uint8(values[4] >> 4)

	bytes[12] = uint8(values[4] << 4)
	bytes[12] |= uint8(values[5] >> 16)

	bytes[13] = uint8(values[5] >> 8)

	bytes[14] = uint8(values[5])

	bytes[15] = uint8(values[6] >> 12)

	bytes[16] = uint8(values[6] >> 4)

	bytes[17] = uint8(values[6] << 4)
	bytes[17] |= uint8(values[7] >> 16)

	bytes[18] = uint8(values[7] >> 8)

	bytes[19] = uint8(values[7])
}

func packBlock21(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 13)

	bytes[1] = uint8(values[0] >> 5)

	bytes[2] = uint8(values[0] << 3)
	bytes[2] |= uint8(values[1] >> 18)

	bytes[3] = uint8(values[1] >> 10)

	bytes[4] = uint8(values[1] >> 2)

	bytes[5] = uint8(values[1] << 6)
	bytes[5] |= uint8(values[2] >> 15)

	bytes[6] = uint8(values[2] >> 7)

	bytes[7] = uint8(values[2] << 1)
	bytes[7] |= uint8(values[3] >> 20)

	bytes[8] = uint8(values[3] >> 12)

	bytes[9] = uint8(values[3] >> 4)

	bytes[10] = uint8(values[3] << 4)
	bytes[10] |= uint8(values[4] >> 17)

	bytes[11] = uint8(values[4] >> 9)

	bytes[12] = uint8(values[4] >> 1)

	bytes[13] = uint8(values[4] << 7)
	bytes[13] |= uint8(values[5] >> 14)

	bytes[14] = uint8(values[5] >> 6)

	bytes[15] = uint8(values[5] << 2)
	bytes[15] |= uint8(values[6] >> 19)

	bytes[16] = uint8(values[6] >> 11)

	bytes[17] = uint8(values[6] >> 3)

	bytes[18] = uint8(values[6] << 5)
	bytes[18] |= uint8(values[7] >> 16)

	bytes[19] = uint8(values[7] >> 8)

	bytes[20] = uint8(values[7])
}

func packBlock22(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 14)

	bytes[1] = uint8(values[0] >> 6)

	bytes[2] = uint8(values[0] << 2)
	bytes[2] |= uint8(values[1] >> 20)

	bytes[3] = uint8(values[1] >> 12)

	bytes[4] = uint8(values[1] >> 4)

	bytes[5] = uint8(values[1] << 4)
	bytes[5] |= uint8(values[2] >> 18)

	bytes[6] = uint8(values[2] >> 10)

	bytes[7] = uint8(values[2] >> 2)

	bytes[8] = uint8(values[2] << 6)
	bytes[8] |= uint8(values[3] >> 16)

	bytes[9] = uint8(values[3] >> 8)

	bytes[10] = uint8(values[3])

	bytes[11] = uint8(values[4] >> 14)

	bytes[12] = uint8(values[4] >> 6)

	bytes[13] = uint8(values[4] << 2)
	bytes[13] |= uint8(values[5] >> 20)

	bytes[14] = uint8(values[5] >> 12)

	bytes[15] = uint8(values[5] >> 4)

	bytes[16] = uint8(values[5] << 4)
	bytes[16] |= uint8(values[6] >> 18)

	bytes[17] = uint8(values[6] >> 10)

	bytes[18] = uint8(values[6] >> 2)

	bytes[19] = uint8(values[6] << 6)
	bytes[19] |= uint8(values[7] >> 16)

	bytes[20] = uint8(values[7] >> 8)

	bytes[21] = uint8(values[7])
}

func packBlock23(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 15)

	bytes[1] = uint8(values[0] >> 7)

	bytes[2] = uint8(values[0] << 1)
	bytes[2] |= uint8(values[1] >> 22)

	bytes[3] = uint8(values[1] >> 14)

	bytes[4] = uint8(values[1] >> 6)

	bytes[5] = uint8(values[1] << 2)
	bytes[5] |= uint8(values[2] >> 21)

	bytes[6] = uint8(values[2] >> 13)

	bytes[7] = uint8(values[2] >> 5)

	bytes[8] = uint8(values[2] << 3)
	bytes[8] |= uint8(values[3] >> 20)

	bytes[9] = uint8(values[3] >> 12)

	bytes[10] = uint8(values[3] >> 4)

	bytes[11] = uint8(values[3] << 4)
	bytes[11] |= uint8(values[4] >> 19)

	bytes[12] = uint8(values[4] >> 11)

	bytes[13] = uint8(values[4] >> 3)

	bytes[14] = uint8(values[4] << 5)
	bytes[14] |= uint8(values[5] >> 18)

	bytes[15] = uint8(values[5] >> 10)

	bytes[16] = uint8(values[5] >> 2)

	bytes[17] = uint8(values[5] << 6)
	bytes[17] |= uint8(values[6] >> 17)

	bytes[18] = uint8(values[6] >> 9)

	bytes[19] = uint8(values[6] >> 1)

	bytes[20] = uint8(values[6] << 7)
	bytes[20] |= uint8(values[7] >> 16)

	bytes[21] = uint8(values[7] >> 8)

	bytes[22] = uint8(values[7])
}

func packBlock24(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 16)

	bytes[1] = uint8(values[0] >> 8)

	bytes[2] = uint8(values[0])

	bytes[3] = uint8(values[1] >> 16)

	bytes[4] = uint8(values[1] >> 8)

	bytes[5] = uint8(values[1])

	bytes[6] = uint8(values[2] >> 16)

	bytes[7] = uint8(values[2] >> 8)

	bytes[8] = uint8(values[2])

	bytes[9] = uint8(values[3] >> 16)

	bytes[10] = uint8(values[3] >> 8)

	bytes[11] = uint8(values[3])

	bytes[12] = uint8(values[4] >> 16)

	bytes[13] = uint8(values[4] >> 8)

	bytes[14] = uint8(values[4])

	bytes[15] = uint8(values[5] >> 16)

	bytes[16] = uint8(values[5] >> 8)

	bytes[17] = uint8(values[5])

	bytes[18] = uint8(values[6] >> 16)

	bytes[19] = uint8(values[6] >> 8)

	bytes[20] = uint8(values[6])

	bytes[21] = uint8(values[7] >> 16)

	bytes[22] = uint8(values[7] >> 8)

	bytes[23] = uint8(values[7])
}

func packBlock25(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 17)

	bytes[1] = uint8(values[0] >> 9)

	bytes[2] = uint8(values[0] >> 1)

	bytes[3] = uint8(values[0] << 7)
	bytes[3] |= uint8(values[1] >> 18)

	bytes[4] = uint8(values[1] >> 10)

	bytes[5] = uint8(values[1] >> 2)

	bytes[6] = uint8(values[1] << 6)
	bytes[6] |= uint8(values[2] >> 19)

	bytes[7] = uint8(values[2] >> 11)

	bytes[8] = uint8(values[2] >> 3)

	bytes[9] = uint8(values[2] << 5)
	bytes[9] |= uint8(values[3] >> 20)

	bytes[10] = uint8(values[3] >> 12)

	bytes[11] = uint8(values[3] >> 4)

	bytes[12] = uint8(values[3] << 4)
	bytes[12] |= uint8(values[4] >> 21)

	bytes[13] = uint8(values[4] >> 13)

	bytes[14] = uint8(values[4] >> 5)

	bytes[15] = uint8(values[4] << 3)
	bytes[15] |= uint8(values[5] >> 22)

	bytes[16] = uint8(values[5] >> 14)

	bytes[17] = uint8(values[5] >> 6)

	bytes[18] = uint8(values[5] << 2)
	bytes[18] |= uint8(values[6] >> 23)

	bytes[19] = uint8(values[6] >> 15)

	bytes[20] = uint8(values[6] >> 7)

	bytes[21] = uint8(values[6] << 1)
	bytes[21] |= uint8(values[7] >> 24)

	bytes[22] = uint8(values[7] >> 16)

	bytes[23] = uint8(values[7] >> 8)

	bytes[24] = uint8(values[7])
}

func packBlock26(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 18)

	bytes[1] = uint8(values[0] >> 10)

	bytes[2] = uint8(values[0] >> 2)

	bytes[3] = uint8(values[0] << 6)
	bytes[3] |= uint8(values[1] >> 20)

	bytes[4] = uint8(values[1] >> 12)

	bytes[5] = uint8(values[1] >> 4)

	bytes[6] = uint8(values[1] << 4)
	bytes[6] |= uint8(values[2] >> 22)

	bytes[7] = uint8(values[2] >> 14)

	bytes[8] = uint8(values[2] >> 6)

	bytes[9] = uint8(values[2] << 2)
	bytes[9] |= uint8(values[3] >> 24)

	bytes[10] = uint8(values[3] >> 16)

	bytes[11] = uint8(values[3] >> 8)

	bytes[12] = uint8(values[3])

	bytes[13] = uint8(values[4] >> 18)

	bytes[14] = uint8(values[4] >> 10)

	bytes[15] = uint8(values[4] >> 2)

	bytes[16] = uint8(values[4] << 6)
	bytes[16] |= uint8(values[5] >> 20)

	bytes[17] = uint8(values[5] >> 12)

	bytes[18] = uint8(values[5] >> 4)

	bytes[19] = uint8(values[5] << 4)
	bytes[19] |= uint8(values[6] >> 22)

	bytes[20] = uint8(values[6] >> 14)

	bytes[21] = uint8(values[6] >> 6)

	bytes[22] = uint8(values[6] << 2)
	bytes[22] |= uint8(values[7] >> 24)

	bytes[23] = uint8(values[7] >> 16)

	bytes[24] = uint8(values[7] >> 8)

	bytes[25] = uint8(values[7])
}

func packBlock27(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 19)

	bytes[1] = uint8(values[0] >> 11)

	bytes[2] = uint8(values[0] >> 3)

	bytes[3] = uint8(values[0] << 5)
	bytes[3] |= uint8(values[1] >> 22)

	bytes[4] = uint8(values[1] >> 14)

	bytes[5] = uint8(values[1] >> 6)

	bytes[6] = uint8(values[1] << 2)
	bytes[6] |= uint8(values[2] >> 25)

	bytes[7] = uint8(values[2] >> 17)

	bytes[8] = uint8(values[2] >> 9)

	bytes[9] = uint8(values[2] >> 1)

	bytes[10] = uint8(values[2] << 7)
	bytes[10] |= uint8(values[3] >> 20)

	bytes[11] = uint8(values[3] >> 12)

	bytes[12] = uint8(values[3] >> 4)

	bytes[13] = uint8(values[3] << 4)
	bytes[13] |= uint8(values[4] >> 23)

	bytes[14] = uint8(values[4] >> 15)

	bytes[15] = uint8(values[4] >> 7)

	bytes[16] = uint8(values[4] << 1)
	bytes[16] |= uint8(values[5] >> 26)

	bytes[17] = uint8(values[5] >> 18)

	bytes[18] = uint8(values[5] >> 10)

	bytes[19] = uint8(values[5] >> 2)

	bytes[20] = uint8(values[5] << 6)
	bytes[20] |= uint8(values[6] >> 21)

	bytes[21] = uint8(values[6] >> 13)

	bytes[22] = uint8(values[6] >> 5)

	bytes[23] = uint8(values[6] << 3)
	bytes[23] |= uint8(values[7] >> 24)

	bytes[24] = uint8(values[7] >> 16)

	bytes[25] = uint8(values[7] >> 8)

	bytes[26] = uint8(values[7])
}

func packBlock28(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 20)

	bytes[1] = uint8(values[0] >> 12)

	bytes[2] = uint8(values[0] >> 4)

	bytes[3] = uint8(values[0] << 4)
	bytes[3] |= uint8(values[1] >> 24)

	bytes[4] = uint8(values[1] >> 16)

	bytes[5] = uint8(values[1] >> 8)

	bytes[6] = uint8(values[1])

	bytes[7] = uint8(values[2] >> 20)

	bytes[8] = uint8(values[2] >> 12)

	bytes[9] = uint8(values[2] >> 4)

	bytes[10] = uint8(values[2] << 4)
	bytes[10] |= uint8(values[3] >> 24)

	bytes[11] = uint8(values[3] >> 16)

	bytes[12] = uint8(values[3] >> 8)

	bytes[13] = uint8(values[3])

	bytes[14] = uint8(values[4] >> 20)

	bytes[15] = uint8(values[4] >> 12)

	bytes[16] = uint8(values[4] >> 4)

	bytes[17] = uint8(values[4] << 4)
	bytes[17] |= uint8(values[5] >> 24)

	bytes[18] = uint8(values[5] >> 16)

	bytes[19] = uint8(values[5] >> 8)

	bytes[20] = uint8(values[5])

	bytes[21] = uint8(values[6] >> 20)

	bytes[22] = uint8(values[6] >> 12)

	bytes[23] = uint8(values[6] >> 4)

	bytes[24] = uint8(values[6] << 4)
	bytes[24] |= uint8(values[7] >> 24)

	bytes[25] = uint8(values[7] >> 16)

	bytes[26] = uint8(values[7] >> 8)

	bytes[27] = uint8(values[7])
}

func packBlock29(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 21)

	bytes[1] = uint8(values[0] >> 13)

	bytes[2] = uint8(values[0] >> 5)

	bytes[3] = uint8(values[0] << 3)
	bytes[3] |= uint8(values[1] >> 26)

	bytes[4] = uint8(values[1] >> 18)

	bytes[5] = uint8(values[1] >> 10)

	bytes[6] = uint8(values[1] >> 2)

	bytes[7] = uint8(values[1] << 6)
	bytes[7] |= uint8(values[2] >> 23)

	bytes[8] = uint8(values[2] >> 15)

	bytes[9] = uint8(values[2] >> 7)

	bytes[10] = uint8(values[2] << 1)
	bytes[10] |= uint8(values[3] >> 28)

	bytes[11] = uint8(values[3] >> 20)

	bytes[12] = uint8(values[3] >> 12)

	bytes[13] = uint8(values[3] >> 4)

	bytes[14] = uint8(values[3] << 4)
	bytes[14] |= uint8(values[4] >> 25)

	bytes[15] = uint8(values[4] >> 17)

	bytes[16] = uint8(values[4] >> 9)

	bytes[17] = uint8(values[4] >> 1)

	bytes[18] = uint8(values[4] << 7)
	bytes[18] |= uint8(values[5] >> 22)

	bytes[19] = uint8(values[5] >> 14)

	bytes[20] = uint8(values[5] >> 6)

	bytes[21] = uint8(values[5] << 2)
	bytes[21] |= uint8(values[6] >> 27)

	bytes[22] = uint8(values[6] >> 19)

	bytes[23] = uint8(values[6] >> 11)

	bytes[24] = uint8(values[6] >> 3)

	bytes[25] = uint8(values[6] << 5)
	bytes[25] |= uint8(values[7] >> 24)

	bytes[26] = uint8(values[7] >> 16)

	bytes[27] = uint8(values[7] >> 8)

	bytes[28] = uint8(values[7])
}

func packBlock30(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 22)

	bytes[1] = uint8(values[0] >> 14)

	bytes[2] = uint8(values[0] >> 6)

	bytes[3] = uint8(values[0] << 2)
	bytes[3] |= uint8(values[1] >> 28)

	bytes[4] = uint8(values[1] >> 20)

	bytes[5] = uint8(values[1] >> 12)

	bytes[6] = uint8(values[1] >> 4)

	bytes[7] = uint8(values[1] << 4)
	bytes[7] |= uint8(values[2] >> 26)

	bytes[8] = uint8(values[2] >> 18)

	bytes[9] = uint8(values[2] >> 10)

	bytes[10] = uint8(values[2] >> 2)

	bytes[11] = uint8(values[2] << 6)
	bytes[11] |= uint8(values[3] >> 24)

	bytes[12] = uint8(values[3] >> 16)

	bytes[13] = uint8(values[3] >> 8)

	bytes[14] = uint8(values[3])

	bytes[15] = uint8(values[4] >> 22)

	bytes[16] = uint8(values[4] >> 14)

	bytes[17] = uint8(values[4] >> 6)

	bytes[18] = uint8(values[4] << 2)
	bytes[18] |= uint8(values[5] >> 28)

	bytes[19] = uint8(values[5] >> 20)

	bytes[20] = uint8(values[5] >> 12)

	bytes[21] = uint8(values[5] >> 4)

	bytes[22] = uint8(values[5] << 4)
	bytes[22] |= uint8(values[6] >> 26)

	bytes[23] = uint8(values[6] >> 18)

	bytes[24] = uint8(values[6] >> 10)

	bytes[25] = uint8(values[6] >> 2)

	bytes[26] = uint8(values[6] << 6)
	bytes[26] |= uint8(values[7] >> 24)

	bytes[27] = uint8(values[7] >> 16)

	bytes[28] = uint8(values[7] >> 8)

	bytes[29] = uint8(values[7])
}

func packBlock31(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 23)

	bytes[1] = uint8(values[0] >> 15)

	bytes[2] = uint8(values[0] >> 7)

	bytes[3] = uint8(values[0] << 1)
	bytes[3] |= uint8(values[1] >> 30)

	bytes[4] = uint8(values[1] >> 22)

	bytes[5] = uint8(values[1] >> 14)

	bytes[6] = uint8(values[1] >> 6)

	bytes[7] = uint8(values[1] << 2)
	bytes[7] |= uint8(values[2] >> 29)

	bytes[8] = uint8(values[2] >> 21)

	bytes[9] = uint8(values[2] >> 13)

	bytes[10] = uint8(values[2] >> 5)

	bytes[11] = uint8(values[2] << 3)
	bytes[11] |= uint8(values[3] >> 28)

	bytes[12] = uint8(values[3] >> 20)

	bytes[13] = uint8(values[3] >> 12)

	bytes[14] = uint8(values[3] >> 4)

	bytes[15] = uint8(values[3] << 4)
	bytes[15] |= uint8(values[4] >> 27)

	bytes[16] = uint8(values[4] >> 19)

	bytes[17] = uint8(values[4] >> 11)

	bytes[18] = uint8(values[4] >> 3)

	bytes[19] = uint8(values[4] << 5)
	bytes[19] |= uint8(values[5] >> 26)

	bytes[20] = uint8(values[5] >> 18)

	bytes[21] = uint8(values[5] >> 10)

	bytes[22] = uint8(values[5] >> 2)

	bytes[23] = uint8(values[5] << 6)
	bytes[23] |= uint8(values[6] >> 25)

	bytes[24] = uint8(values[6] >> 17)

	bytes[25] = uint8(values[6] >> 9)

	bytes[26] = uint8(values[6] >> 1)

	bytes[27] = uint8(values[6] << 7)
	bytes[27] |= uint8(values[7] >> 24)

	bytes[28] = uint8(values[7] >> 16)

	bytes[29] = uint8(values[7] >> 8)

	bytes[30] = uint8(values[7])
}

func packBlock32(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 24)

	bytes[1] = uint8(values[0] >> 16)

	bytes[2] = uint8(values[0] >> 8)

	bytes[3] = uint8(values[0])

	bytes[4] = uint8(values[1] >> 24)

	bytes[5] = uint8(values[1] >> 16)

	bytes[6] = uint8(values[1] >> 8)

	bytes[7] = uint8(values[1])

	bytes[8] = uint8(values[2] >> 24)

	bytes[9] = uint8(values[2] >> 16)

	bytes[10] = uint8(values[2] >> 8)

	bytes[11] = uint8(values[2])

	bytes[12] = uint8(values[3] >> 24)

	bytes[13] = uint8(values[3] >> 16)

	bytes[14] = uint8(values[3] >> 8)

	bytes[15] = uint8(values[3])

	bytes[16] = uint8(values[4] >> 24)

	bytes[17] = uint8(values[4] >> 16)

	bytes[18] = uint8(values[4] >> 8)

	bytes[19] = uint8(values[4])

	bytes[20] = uint8(values[5] >> 24)

	bytes[21] = uint8(values[5] >> 16)

	bytes[22] = uint8(values[5] >> 8)

	bytes[23] = uint8(values[5])

	bytes[24] = uint8(values[6] >> 24)

	bytes[25] = uint8(values[6] >> 16)

	bytes[26] = uint8(values[6] >> 8)

	bytes[27] = uint8(values[6])

	bytes[28] = uint8(values[7] >> 24)

	bytes[29] = uint8(values[7] >> 16)

	bytes[30] = uint8(values[7] >> 8)

	bytes[31] = uint8(values[7])
}

func packBlock33(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 25)

	bytes[1] = uint8(values[0] >> 17)

	bytes[2] = uint8(values[0] >> 9)

	bytes[3] = uint8(values[0] >> 1)

	bytes[4] = uint8(values[0] << 7)
	bytes[4] |= uint8(values[1] >> 26)

	bytes[5] = uint8(values[1] >> 18)

	bytes[6] = uint8(values[1] >> 10)

	bytes[7] = uint8(values[1] >> 2)

	bytes[8] = uint8(values[1] << 6)
	bytes[8] |= uint8(values[2] >> 27)

	bytes[9] = uint8(values[2] >> 19)

	bytes[10] = uint8(values[2] >> 11)

	bytes[11] = uint8(values[2] >> 3)

	bytes[12] = uint8(values[2] << 5)
	bytes[12] |= uint8(values[3] >> 28)

	bytes[13] = uint8(values[3] >> 20)

	bytes[14] = uint8(values[3] >> 12)

	bytes[15] = uint8(values[3] >> 4)

	bytes[16] = uint8(values[3] << 4)
	bytes[16] |= uint8(values[4] >> 29)

	bytes[17] = uint8(values[4] >> 21)

	bytes[18] = uint8(values[4] >> 13)

	bytes[19] = uint8(values[4] >> 5)

	bytes[20] = uint8(values[4] << 3)
	bytes[20] |= uint8(values[5] >> 30)

	bytes[21] = uint8(values[5] >> 22)

	bytes[22] = uint8(values[5] >> 14)

	bytes[23] = uint8(values[5] >> 6)

	bytes[24] = uint8(values[5] << 2)
	bytes[24] |= uint8(values[6] >> 31)

	bytes[25] = uint8(values[6] >> 23)

	bytes[26] = uint8(values[6] >> 15)

	bytes[27] = uint8(values[6] >> 7)

	bytes[28] = uint8(values[6] << 1)
	bytes[28] |= uint8(values[7] >> 32)

	bytes[29] = uint8(values[7] >> 24)

	bytes[30] = uint8(values[7] >> 16)

	bytes[31] = uint8(values[7] >> 8)

	bytes[32] = uint8(values[7])
}

func packBlock34(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 26)

	bytes[1] = uint8(values[0] >> 18)

	bytes[2] = uint8(values[0] >> 10)

	bytes[3] = uint8(values[0] >> 2)

	bytes[4] = uint8(values[0] << 6)
	bytes[4] |= uint8(values[1] >> 28)

	bytes[5] = uint8(values[1] >> 20)

	bytes[6] = uint8(values[1] >> 12)

	bytes[7] = uint8(values[1] >> 4)

	bytes[8] = uint8(values[1] << 4)
	bytes[8] |= uint8(values[2] >> 30)

	bytes[9] = uint8(values[2] >> 22)

	bytes[10] = uint8(values[2] >> 14)

	bytes[11] = uint8(values[2] >> 6)

	bytes[12] = uint8(values[2] << 2)
	bytes[12] |= uint8(values[3] >> 32)

	bytes[13] = uint8(values[3] >> 24)

	bytes[14] = uint8(values[3] >> 16)

	bytes[15] = uint8(values[3] >> 8)

	bytes[16] = uint8(values[3])

	bytes[17] = uint8(values[4] >> 26)

	bytes[18] = uint8(values[4] >> 18)

	bytes[19] = uint8(values[4] >> 10)

	bytes[20] = uint8(values[4] >> 2)

	bytes[21] = uint8(values[4] << 6)
	bytes[21] |= uint8(values[5] >> 28)

	bytes[22] = uint8(values[5] >> 20)

	bytes[23] = uint8(values[5] >> 12)

	bytes[24] = uint8(values[5] >> 4)

	bytes[25] = uint8(values[5] << 4)
	bytes[25] |= uint8(values[6] >> 30)

	bytes[26] = uint8(values[6] >> 22)

	bytes[27] = uint8(values[6] >> 14)

	bytes[28] = uint8(values[6] >> 6)

	bytes[29] = uint8(values[6] << 2)
	bytes[29] |= uint8(values[7] >> 32)

	bytes[30] = uint8(values[7] >> 24)

	bytes[31] = uint8(values[7] >> 16)

	bytes[32] = uint8(values[7] >> 8)

	bytes[33] = uint8(values[7])
}

func packBlock35(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 27)

	bytes[1] = uint8(values[0] >> 19)

	bytes[2] = uint8(values[0] >> 11)

	bytes[3] = uint8(values[0] >> 3)

	bytes[4] = uint8(values[0] << 5)
	bytes[4] |= uint8(values[1] >> 30)

	bytes[5] = uint8(values[1] >> 22)

	bytes[6] = uint8(values[1] >> 14)

	bytes[7] = uint8(values[1] >> 6)

	bytes[8] = uint8(values[1] << 2)
	bytes[8] |= uint8(values[2] >> 33)

	bytes[9] = uint8(values[2] >> 25)

	bytes[10] = uint8(values[2] >> 17)

	bytes[11] = uint8(values[2] >> 9)

	bytes[12] = uint8(values[2] >> 1)

	bytes[13] = uint8(values[2] << 7)
	bytes[13] |= uint8(values[3] >> 28)

	bytes[14] = uint8(values[3] >> 20)

	bytes[15] = uint8(values[3] >> 12)

	bytes[16] = uint8(values[3] >> 4)

	bytes[17] = uint8(values[3] << 4)
	bytes[17] |= uint8(values[4] >> 31)

	bytes[18] = uint8(values[4] >> 23)

	bytes[19] = uint8(values[4] >> 15)

	bytes[20] = uint8(values[4] >> 7)

	bytes[21] = uint8(values[4] << 1)
	bytes[21] |= uint8(values[5] >> 34)

	bytes[22] = uint8(values[5] >> 26)

	bytes[23] = uint8(values[5] >> 18)

	bytes[24] = uint8(values[5] >> 10)

	bytes[25] = uint8(values[5] >> 2)

	bytes[26] = uint8(values[5] << 6)
	bytes[26] |= uint8(values[6] >> 29)

	bytes[27] = uint8(values[6] >> 21)

	bytes[28] = uint8(values[6] >> 13)

	bytes[29] = uint8(values[6] >> 5)

	bytes[30] = uint8(values[6] << 3)
	bytes[30] |= uint8(values[7] >> 32)

	bytes[31] = uint8(values[7] >> 24)

	bytes[32] = uint8(values[7] >> 16)

	bytes[33] = uint8(values[7] >> 8)

	bytes[34] = uint8(values[7])
}

func packBlock36(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 28)

	bytes[1] = uint8(values[0] >> 20)

	bytes[2] = uint8(values[0] >> 12)

	bytes[3] = uint8(values[0] >> 4)

	bytes[4] = uint8(values[0] << 4)
	bytes[4] |= uint8(values[1] >> 32)

	bytes[5] = uint8(values[1] >> 24)

	bytes[6] = uint8(values[1] >> 16)

	bytes[7] = uint8(values[1] >> 8)

	bytes[8] = uint8(values[1])

	bytes[9] = uint8(values[2] >> 28)

	bytes[10] = uint8(values[2] >> 20)

	bytes[11] = uint8(values[2] >> 12)

	bytes[12] = uint8(values[2] >> 4)

	bytes[13] = uint8(values[2] << 4)
	bytes[13] |= uint8(values[3] >> 32)

	bytes[14] = uint8(values[3] >> 24)

	bytes[15] = uint8(values[3] >> 16)

	bytes[16] = uint8(values[3] >> 8)

	bytes[17] = uint8(values[3])

	bytes[18] = uint8(values[4] >> 28)

	bytes[19] = uint8(values[4] >> 20)

	bytes[20] = uint8(values[4] >> 12)

	bytes[21] = uint8(values[4] >> 4)

	bytes[22] = uint8(values[4] << 4)
	bytes[22] |= uint8(values[5] >> 32)

	bytes[23] = uint8(values[5] >> 24)

	bytes[24] = uint8(values[5] >> 16)

	bytes[25] = uint8(values[5] >> 8)

	bytes[26] = uint8(values[5])

	bytes[27] = uint8(values[6] >> 28)

	bytes[28] = uint8(values[6] >> 20)

	bytes[29] = uint8(values[6] >> 12)

	bytes[30] = uint8(values[6] >> 4)

	bytes[31] = uint8(values[6] << 4)
	bytes[31] |= uint8(values[7] >> 32)

	bytes[32] = uint8(values[7] >> 24)

	bytes[33] = uint8(values[7] >> 16)

	bytes[34] = uint8(values[7] >> 8)

	bytes[35] = uint8(values[7])
}

func packBlock37(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 29)

	bytes[1] = uint8(values[0] >> 21)

	bytes[2] = uint8(values[0] >> 13)

	bytes[3] = uint8(values[0] >> 5)

	bytes[4] = uint8(values[0] << 3)
	bytes[4] |= uint8(values[1] >> 34)

	bytes[5] = uint8(values[1] >> 26)

	bytes[6] = uint8(values[1] >> 18)

	bytes[7] = uint8(values[1] >> 10)

	bytes[8] = uint8(values[1] >> 2)

	bytes[9] = uint8(values[1] << 6)
	bytes[9] |= uint8(values[2] >> 31)

	bytes[10] = uint8(values[2] >> 23)

	bytes[11] = uint8(values[2] >> 15)

	bytes[12] = uint8(values[2] >> 7)

	bytes[13] = uint8(values[2] << 1)
	bytes[13] |= uint8(values[3] >> 36)

	bytes[14] = uint8(values[3] >> 28)

	bytes[15] = uint8(values[3] >> 20)

	bytes[16] = uint8(values[3] >> 12)

	bytes[17] = uint8(values[3] >> 4)

	bytes[18] = uint8(values[3] << 4)
	bytes[18] |= uint8(values[4] >> 33)

	bytes[19] = uint8(values[4] >> 25)

	bytes[20] = uint8(values[4] >> 17)

	bytes[21] = uint8(values[4] >> 9)

	bytes[22] = uint8(values[4] >> 1)

	bytes[23] = uint8(values[4] << 7)
	bytes[23] |= uint8(values[5] >> 30)

	bytes[24] = uint8(values[5] >> 22)

	bytes[25] = uint8(values[5] >> 14)

	bytes[26] = uint8(values[5] >> 6)

	bytes[27] = uint8(values[5] << 2)
	bytes[27] |= uint8(values[6] >> 35)

	bytes[28] = uint8(values[6] >> 27)

	bytes[29] = uint8(values[6] >> 19)

	bytes[30] = uint8(values[6] >> 11)

	bytes[31] = uint8(values[6] >> 3)

	bytes[32] = uint8(values[6] << 5)
	bytes[32] |= uint8(values[7] >> 32)

	bytes[33] = uint8(values[7] >> 24)

	bytes[34] = uint8(values[7] >> 16)

	bytes[35] = uint8(values[7] >> 8)

	bytes[36] = uint8(values[7])
}

func packBlock38(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 30)

	bytes[1] = uint8(values[0] >> 22)

	bytes[2] = uint8(values[0] >> 14)

	bytes[3] = uint8(values[0] >> 6)

	bytes[4] = uint8(values[0] << 2)
	bytes[4] |= uint8(values[1] >> 36)

	bytes[5] = uint8(values[1] >> 28)

	bytes[6] = uint8(values[1] >> 20)

	bytes[7] = uint8(values[1] >> 12)

	bytes[8] = uint8(values[1] >> 4)

	bytes[9] = uint8(values[1] << 4)
	bytes[9] |= uint8(values[2] >> 34)

	bytes[10] = uint8(values[2] >> 26)

	bytes[11] = uint8(values[2] >> 18)

	bytes[12] = uint8(values[2] >> 10)

	bytes[13] = uint8(values[2] >> 2)

	bytes[14] = uint8(values[2] << 6)
	bytes[14] |= uint8(values[3] >> 32)

	bytes[15] = uint8(values[3] >> 24)

	bytes[16] = uint8(values[3] >> 16)

	bytes[17] = uint8(values[3] >> 8)

	bytes[18] = uint8(values[3])

	bytes[19] = uint8(values[4] >> 30)

	bytes[20] = uint8(values[4] >> 22)

	bytes[21] = uint8(values[4] >> 14)

	bytes[22] = uint8(values[4] >> 6)

	bytes[23] = uint8(values[4] << 2)
	bytes[23] |= uint8(values[5] >> 36)

	bytes[24] = uint8(values[5] >> 28)

	bytes[25] = uint8(values[5] >> 20)

	bytes[26] = uint8(values[5] >> 12)

	bytes[27] = uint8(values[5] >> 4)

	bytes[28] = uint8(values[5] << 4)
	bytes[28] |= uint8(values[6] >> 34)

	bytes[29] = uint8(values[6] >> 26)

	bytes[30] = uint8(values[6] >> 18)

	bytes[31] = uint8(values[6] >> 10)

	bytes[32] = uint8(values[6] >> 2)

	bytes[33] = uint8(values[6] << 6)
	bytes[33] |= uint8(values[7] >> 32)

	bytes[34] = uint8(values[7] >> 24)

	bytes[35] = uint8(values[7] >> 16)

	bytes[36] = uint8(values[7] >> 8)

	bytes[37] = uint8(values[7])
}

func packBlock39(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 31)

	bytes[1] = uint8(values[0] >> 23)

	bytes[2] = uint8(values[0] >> 15)

	bytes[3] = uint8(values[0] >> 7)

	bytes[4] = uint8(values[0] << 1)
	bytes[4] |= uint8(values[1] >> 38)

	bytes[5] = uint8(values[1] >> 30)

	bytes[6] = uint8(values[1] >> 22)

	bytes[7] = uint8(values[1] >> 14)

	bytes[8] = uint8(values[1] >> 6)

	bytes[9] = uint8(values[1] << 2)
	bytes[9] |= uint8(values[2] >> 37)

	bytes[10] = uint8(values[2] >> 29)

	bytes[11] = uint8(values[2] >> 21)

	bytes[12] = uint8(values[2] >> 13)

	bytes[13] = uint8(values[2] >> 5)

	bytes[14] = uint8(values[2] << 3)
	bytes[14] |= uint8(values[3] >> 36)

	bytes[15] = uint8(values[3] >> 28)

	bytes[16] = uint8(values[3] >> 20)

	bytes[17] = uint8(values[3] >> 12)

	bytes[18] = uint8(values[3] >> 4)

	bytes[19] = uint8(values[3] << 4)
	bytes[19] |= uint8(values[4] >> 35)

	bytes[20] = uint8(values[4] >> 27)

	bytes[21] = uint8(values[4] >> 19)

	bytes[22] = uint8(values[4] >> 11)

	bytes[23] = uint8(values[4] >> 3)

	bytes[24] = uint8(values[4] << 5)
	bytes[24] |= uint8(values[5] >> 34)

	bytes[25] = uint8(values[5] >> 26)

	bytes[26] = uint8(values[5] >> 18)

	bytes[27] = uint8(values[5] >> 10)

	bytes[28] = uint8(values[5] >> 2)

	bytes[29] = uint8(values[5] << 6)
	bytes[29] |= uint8(values[6] >> 33)

	bytes[30] = uint8(values[6] >> 25)

	bytes[31] = uint8(values[6] >> 17)

	bytes[32] = uint8(values[6] >> 9)

	bytes[33] = uint8(values[6] >> 1)

	bytes[34] = uint8(values[6] << 7)
	bytes[34] |= uint8(values[7] >> 32)

	bytes[35] = uint8(values[7] >> 24)

	bytes[36] = uint8(values[7] >> 16)

	bytes[37] = uint8(values[7] >> 8)

	bytes[38] = uint8(values[7])
}

func packBlock40(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 32)

	bytes[1] = uint8(values[0] >> 24)

	bytes[2] = uint8(values[0] >> 16)

	bytes[3] = uint8(values[0] >> 8)

	bytes[4] = uint8(values[0])

	bytes[5] = uint8(values[1] >> 32)

	bytes[6] = uint8(values[1] >> 24)

	bytes[7] = uint8(values[1] >> 16)

	bytes[8] = uint8(values[1] >> 8)

	bytes[9] = uint8(values[1])

	bytes[10] = uint8(values[2] >> 32)

	bytes[11] = uint8(values[2] >> 24)

	bytes[12] = uint8(values[2] >> 16)

	bytes[13] = uint8(values[2] >> 8)

	bytes[14] = uint8(values[2])

	bytes[15] = uint8(values[3] >> 32)

	bytes[16] = uint8(values[3] >> 24)

	bytes[17] = uint8(values[3] >> 16)

	bytes[18] = uint8(values[3] >> 8)

	bytes[19] = uint8(values[3])

	bytes[20] = uint8(values[4] >> 32)

	bytes[21] = uint8(values[4] >> 24)

	bytes[22] = uint8(values[4] >> 16)

	bytes[23] = uint8(values[4] >> 8)

	bytes[24] = uint8(values[4])

	bytes[25] = uint8(values[5] >> 32)

	bytes[26] = uint8(values[5] >> 24)

	bytes[27] = uint8(values[5] >> 16)

	bytes[28] = uint8(values[5] >> 8)

	bytes[29] = uint8(values[5])

	bytes[30] = uint8(values[6] >> 32)

	bytes[31] = uint8(values[6] >> 24)

	bytes[32] = uint8(values[6] >> 16)

	bytes[33] = uint8(values[6] >> 8)

	bytes[34] = uint8(values[6])

	bytes[35] = uint8(values[7] >> 32)

	bytes[36] = uint8(values[7] >> 24)

	bytes[37] = uint8(values[7] >> 16)

	bytes[38] = uint8(values[7] >> 8)

	bytes[39] = uint8(values[7])
}

func packBlock41(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 33)

	bytes[1] = uint8(values[0] >> 25)

	bytes[2] = uint8(values[0] >> 17)

	bytes[3] = uint8(values[0] >> 9)

	bytes[4] = uint8(values[0] >> 1)

	bytes[5] = uint8(values[0] << 7)
	bytes[5] |= uint8(values[1] >> 34)

	bytes[6] = uint8(values[1] >> 26)

	bytes[7] = uint8(values[1] >> 18)

	bytes[8] = uint8(values[1] >> 10)

	bytes[9] = uint8(values[1] >> 2)

	bytes[10] = uint8(values[1] << 6)
	bytes[10] |= uint8(values[2] >> 35)

	bytes[11] = uint8(values[2] >> 27)

	bytes[12] = uint8(values[2] >> 19)

	bytes[13] = uint8(values[2] >> 11)

	bytes[14] = uint8(values[2] >> 3)

	bytes[15] = uint8(values[2] << 5)
	bytes[15] |= uint8(values[3] >> 36)

	bytes[16] = uint8(values[3] >> 28)

	bytes[17] = uint8(values[3] >> 20)

	bytes[18] = uint8(values[3] >> 12)

	bytes[19] = uint8(values[3] >> 4)

	bytes[20] = uint8(values[3] << 4)
	bytes[20] |= uint8(values[4] >> 37)

	bytes[21] = uint8(values[4] >> 29)

	bytes[22] = uint8(values[4] >> 21)

	bytes[23] = uint8(values[4] >> 13)

	bytes[24] = uint8(values[4] >> 5)

	bytes[25] = uint8(values[4] << 3)
	bytes[25] |= uint8(values[5] >> 38)

	bytes[26] = uint8(values[5] >> 30)

	bytes[27] = uint8(values[5] >> 22)

	bytes[28] = uint8(values[5] >> 14)

	bytes[29] = uint8(values[5] >> 6)

	bytes[30] = uint8(values[5] << 2)
	bytes[30] |= uint8(values[6] >> 39)

	bytes[31] = uint8(values[6] >> 31)

	bytes[32] = uint8(values[6] >> 23)

	bytes[33] = uint8(values[6] >> 15)

	bytes[34] = uint8(values[6] >> 7)

	bytes[35] = uint8(values[6] << 1)
	bytes[35] |= uint8(values[7] >> 40)

	bytes[36] = uint8(values[7] >> 32)

	bytes[37] = uint8(values[7] >> 24)

	bytes[38] = uint8(values[7] >> 16)

	bytes[39] = uint8(values[7] >> 8)

	bytes[40] = uint8(values[7])
}

func packBlock42(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 34)

	bytes[1] = uint8(values[0] >> 26)

	bytes[2] = uint8(values[0] >> 18)

	bytes[3] = uint8(values[0] >> 10)

	bytes[4] = uint8(values[0] >> 2)

	bytes[5] = uint8(values[0] << 6)
	bytes[5] |= uint8(values[1] >> 36)

	bytes[6] = uint8(values[1] >> 28)

	bytes[7] = uint8(values[1] >> 20)

	bytes[8] = uint8(values[1] >> 12)

	bytes[9] = uint8(values[1] >> 4)

	bytes[10] = uint8(values[1] << 4)
	bytes[10] |= uint8(values[2] >> 38)

	bytes[11] = uint8(values[2] >> 30)

	bytes[12] = uint8(values[2] >> 22)

	bytes[13] = uint8(values[2] >> 14)

	bytes[14] = uint8(values[2] >> 6)

	bytes[15] = uint8(values[2] << 2)
	bytes[15] |= uint8(values[3] >> 40)

	bytes[16] = uint8(values[3] >> 32)

	bytes[17] = uint8(values[3] >> 24)

	bytes[18] = uint8(values[3] >> 16)

	bytes[19] = uint8(values[3] >> 8)

	bytes[20] = uint8(values[3])

	bytes[21] = uint8(values[4] >> 34)

	bytes[22] = uint8(values[4] >> 26)

	bytes[23] = uint8(values[4] >> 18)

	bytes[24] = uint8(values[4] >> 10)

	bytes[25] = uint8(values[4] >> 2)

	bytes[26] = uint8(values[4] << 6)
	bytes[26] |= uint8(values[5] >> 36)

	bytes[27] = uint8(values[5] >> 28)

	bytes[28] = uint8(values[5] >> 20)

	bytes[29] = uint8(values[5] >> 12)

	bytes[30] = uint8(values[5] >> 4)

	bytes[31] = uint8(values[5] << 4)
	bytes[31] |= uint8(values[6] >> 38)

	bytes[32] = uint8(values[6] >> 30)

	bytes[33] = uint8(values[6] >> 22)

	bytes[34] = uint8(values[6] >> 14)

	bytes[35] = uint8(values[6] >> 6)

	bytes[36] = uint8(values[6] << 2)
	bytes[36] |= uint8(values[7] >> 40)

	bytes[37] = uint8(values[7] >> 32)

	bytes[38] = uint8(values[7] >> 24)

	bytes[39] = uint8(values[7] >> 16)

	bytes[40] = uint8(values[7] >> 8)

	bytes[41] = uint8(values[7])
}

func packBlock43(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 35)

	bytes[1] = uint8(values[0] >> 27)

	bytes[2] = uint8(values[0] >> 19)

	bytes[3] = uint8(values[0] >> 11)

	bytes[4] = uint8(values[0] >> 3)

	bytes[5] = uint8(values[0] << 5)
	bytes[5] |= uint8(values[1] >> 38)

	bytes[6] = uint8(values[1] >> 30)

	bytes[7] = uint8(values[1] >> 22)

	bytes[8] = uint8(values[1] >> 14)

	bytes[9] = uint8(values[1] >> 6)

	bytes[10] = uint8(values[1] << 2)
	bytes[10] |= uint8(values[2] >> 41)

	bytes[11] = uint8(values[2] >> 33)

	bytes[12] = uint8(values[2] >> 25)

	bytes[13] = uint8(values[2] >> 17)

	bytes[14] = uint8(values[2] >> 9)

	bytes[15] = uint8(values[2] >> 1)

	bytes[16] = uint8(values[2] << 7)
	bytes[16] |= uint8(values[3] >> 36)

	bytes[17] = uint8(values[3] >> 28)

	bytes[18] = uint8(values[3] >> 20)

	bytes[19] = uint8(values[3] >> 12)

	bytes[20] = uint8(values[3] >> 4)

	bytes[21] = uint8(values[3] << 4)
	bytes[21] |= uint8(values[4] >> 39)

	bytes[22] = uint8(values[4] >> 31)

	bytes[23] = uint8(values[4] >> 23)

	bytes[24] = uint8(values[4] >> 15)

	bytes[25] = uint8(values[4] >> 7)

	bytes[26] = uint8(values[4] << 1)
	bytes[26] |= uint8(values[5] >> 42)

	bytes[27] = uint8(values[5] >> 34)

	bytes[28] = uint8(values[5] >> 26)

	bytes[29] = uint8(values[5] >> 18)

	bytes[30] = uint8(values[5] >> 10)

	bytes[31] = uint8(values[5] >> 2)

	bytes[32] = uint8(values[5] << 6)
	bytes[32] |= uint8(values[6] >> 37)

	bytes[33] = uint8(values[6] >> 29)

	bytes[34] = uint8(values[6] >> 21)

	bytes[35] = uint8(values[6] >> 13)

	bytes[36] = uint8(values[6] >> 5)

	bytes[37] = uint8(values[6] << 3)
	bytes[37] |= uint8(values[7] >> 40)

	bytes[38] = uint8(values[7] >> 32)

	bytes[39] = uint8(values[7] >> 24)

	bytes[40] = uint8(values[7] >> 16)

	bytes[41] = uint8(values[7] >> 8)

	bytes[42] = uint8(values[7])
}

func packBlock44(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 36)

	bytes[1] = uint8(values[0] >> 28)

	bytes[2] = uint8(values[0] >> 20)

	bytes[3] = uint8(values[0] >> 12)

	bytes[4] = uint8(values[0] >> 4)

	bytes[5] = uint8(values[0] << 4)
	bytes[5] |= uint8(values[1] >> 40)

	bytes[6] = uint8(values[1] >> 32)

	bytes[7] = uint8(values[1] >> 24)

	bytes[8] = uint8(values[1] >> 16)

	bytes[9] = uint8(values[1] >> 8)

	bytes[10] = uint8(values[1])

	bytes[11] = uint8(values[2] >> 36)

	bytes[12] = uint8(values[2] >> 28)

	bytes[13] = uint8(values[2] >> 20)

	bytes[14] = uint8(values[2] >> 12)

	bytes[15] = uint8(values[2] >> 4)

	bytes[16] = uint8(values[2] << 4)
	bytes[16] |= uint8(values[3] >> 40)

	bytes[17] = uint8(values[3] >> 32)

	bytes[18] = uint8(values[3] >> 24)

	bytes[19] = uint8(values[3] >> 16)

	bytes[20] = uint8(values[3] >> 8)

	bytes[21] = uint8(values[3])

	bytes[22] = uint8(values[4] >> 36)

	bytes[23] = uint8(values[4] >> 28)

	bytes[24] = uint8(values[4] >> 20)

	bytes[25] = uint8(values[4] >> 12)

	bytes[26] = uint8(values[4] >> 4)

	bytes[27] = uint8(values[4] << 4)
	bytes[27] |= uint8(values[5] >> 40)

	bytes[28] = uint8(values[5] >> 32)

	bytes[29] = uint8(values[5] >> 24)

	bytes[30] = uint8(values[5] >> 16)

	bytes[31] = uint8(values[5] >> 8)

	bytes[32] = uint8(values[5])

	bytes[33] = uint8(values[6] >> 36)

	bytes[34] = uint8(values[6] >> 28)

	bytes[35] = uint8(values[6] >> 20)

	bytes[36] = uint8(values[6] >> 12)

	bytes[37] = uint8(values[6] >> 4)

	bytes[38] = uint8(values[6] << 4)
	bytes[38] |= uint8(values[7] >> 40)

	bytes[39] = uint8(values[7] >> 32)

	bytes[40] = uint8(values[7] >> 24)

	bytes[41] = uint8(values[7] >> 16)

	bytes[42] = uint8(values[7] >> 8)

	bytes[43] = uint8(values[7])
}

func packBlock45(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 37)

	bytes[1] = uint8(values[0] >> 29)

	bytes[2] = uint8(values[0] >> 21)

	bytes[3] = uint8(values[0] >> 13)

	bytes[4] = uint8(values[0] >> 5)

	bytes[5] = uint8(values[0] << 3)
	bytes[5] |= uint8(values[1] >> 42)

	bytes[6] = uint8(values[1] >> 34)

	bytes[7] = uint8(values[1] >> 26)

	bytes[8] = uint8(values[1] >> 18)

	bytes[9] = uint8(values[1] >> 10)

	bytes[10] = uint8(values[1] >> 2)

	bytes[11] = uint8(values[1] << 6)
	bytes[11] |= uint8(values[2] >> 39)

	bytes[12] = uint8(values[2] >> 31)

	bytes[13] = uint8(values[2] >> 23)

	bytes[14] = uint8(values[2] >> 15)

	bytes[15] = uint8(values[2] >> 7)

	bytes[16] = uint8(values[2] << 1)
	bytes[16] |= uint8(values[3] >> 44)

	bytes[17] = uint8(values[3] >> 36)

	bytes[18] = uint8(values[3] >> 28)

	bytes[19] = uint8(values[3] >> 20)

	bytes[20] = uint8(values[3] >> 12)

	bytes[21] = uint8(values[3] >> 4)

	bytes[22] = uint8(values[3] << 4)
	bytes[22] |= uint8(values[4] >> 41)

	bytes[23] = uint8(values[4] >> 33)

	bytes[24] = uint8(values[4] >> 25)

	bytes[25] = uint8(values[4] >> 17)

	bytes[26] = uint8(values[4] >> 9)

	bytes[27] = uint8(values[4] >> 1)

	bytes[28] = uint8(values[4] << 7)
	bytes[28] |= uint8(values[5] >> 38)

	bytes[29] = uint8(values[5] >> 30)

	bytes[30] = uint8(values[5] >> 22)

	bytes[31] = uint8(values[5] >> 14)

	bytes[32] = uint8(values[5] >> 6)

	bytes[33] = uint8(values[5] << 2)
	bytes[33] |= uint8(values[6] >> 43)

	bytes[34] = uint8(values[6] >> 35)

	bytes[35] = uint8(values[6] >> 27)

	bytes[36] = uint8(values[6] >> 19)

	bytes[37] = uint8(values[6] >> 11)

	bytes[38] = uint8(values[6] >> 3)

	bytes[39] = uint8(values[6] << 5)
	bytes[39] |= uint8(values[7] >> 40)

	bytes[40] = uint8(values[7] >> 32)

	bytes[41] = uint8(values[7] >> 24)

	bytes[42] = uint8(values[7] >> 16)

	bytes[43] = uint8(values[7] >> 8)

	bytes[44] = uint8(values[7])
}

func packBlock46(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 38)

	bytes[1] = uint8(values[0] >> 30)

	bytes[2] = uint8(values[0] >> 22)

	bytes[3] = uint8(values[0] >> 14)

	bytes[4] = uint8(values[0] >> 6)

	bytes[5] = uint8(values[0] << 2)
	bytes[5] |= uint8(values[1] >> 44)

	bytes[6] = uint8(values[1] >> 36)

	bytes[7] = uint8(values[1] >> 28)

	bytes[8] = uint8(values[1] >> 20)

	bytes[9] = uint8(values[1] >> 12)

	bytes[10] = uint8(values[1] >> 4)

	bytes[11] = uint8(values[1] << 4)
	bytes[11] |= uint8(values[2] >> 42)

	bytes[12] = uint8(values[2] >> 34)

	bytes[13] = uint8(values[2] >> 26)

	bytes[14] = uint8(values[2] >> 18)

	bytes[15] = uint8(values[2] >> 10)

	bytes[16] = uint8(values[2] >> 2)

	bytes[17] = uint8(values[2] << 6)
	bytes[17] |= uint8(values[3] >> 40)

	bytes[18] = uint8(values[3] >> 32)

	bytes[19] = uint8(values[3] >> 24)

	bytes[20] = uint8(values[3] >> 16)

	bytes[21] = uint8(values[3] >> 8)

	bytes[22] = uint8(values[3])

	bytes[23] = uint8(values[4] >> 38)

	bytes[24] = uint8(values[4] >> 30)

	bytes[25] = uint8(values[4] >> 22)

	bytes[26] = uint8(values[4] >> 14)

	bytes[27] = uint8(values[4] >> 6)

	bytes[28] = uint8(values[4] << 2)
	bytes[28] |= uint8(values[5] >> 44)

	bytes[29] = uint8(values[5] >> 36)

	bytes[30] = uint8(values[5] >> 28)

	bytes[31] = uint8(values[5] >> 20)

	bytes[32] = uint8(values[5] >> 12)

	bytes[33] = uint8(values[5] >> 4)

	bytes[34] = uint8(values[5] << 4)
	bytes[34] |= uint8(values[6] >> 42)

	bytes[35] = uint8(values[6] >> 34)

	bytes[36] = uint8(values[6] >> 26)

	bytes[37] = uint8(values[6] >> 18)

	bytes[38] = uint8(values[6] >> 10)

	bytes[39] = uint8(values[6] >> 2)

	bytes[40] = uint8(values[6] << 6)
	bytes[40] |= uint8(values[7] >> 40)

	bytes[41] = uint8(values[7] >> 32)

	bytes[42] = uint8(values[7] >> 24)

	bytes[43] = uint8(values[7] >> 16)

	bytes[44] = uint8(values[7] >> 8)

	bytes[45] = uint8(values[7])
}

func packBlock47(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 39)

	bytes[1] = uint8(values[0] >> 31)

	bytes[2] = uint8(values[0] >> 23)

	bytes[3] = uint8(values[0] >> 15)

	bytes[4] = uint8(values[0] >> 7)

	bytes[5] = uint8(values[0] << 1)
	bytes[5] |= uint8(values[1] >> 46)

	bytes[6] = uint8(values[1] >> 38)

	bytes[7] = uint8(values[1] >> 30)

	bytes[8] = uint8(values[1] >> 22)

	bytes[9] = uint8(values[1] >> 14)

	bytes[10] = uint8(values[1] >> 6)

	bytes[11] = uint8(values[1] << 2)
	bytes[11] |= uint8(values[2] >> 45)

	bytes[12] = uint8(values[2] >> 37)

	bytes[13] = uint8(values[2] >> 29)

	bytes[14] = uint8(values[2] >> 21)

	bytes[15] = uint8(values[2] >> 13)

	bytes[16] = uint8(values[2] >> 5)

	bytes[17] = uint8(values[2] << 3)
	bytes[17] |= uint8(values[3] >> 44)

	bytes[18] = uint8(values[3] >> 36)

	bytes[19] = uint8(values[3] >> 28)

	bytes[20] = uint8(values[3] >> 20)

	bytes[21] = uint8(values[3] >> 12)

	bytes[22] = uint8(values[3] >> 4)

	bytes[23] = uint8(values[3] << 4)
	bytes[23] |= uint8(values[4] >> 43)

	bytes[24] = uint8(values[4] >> 35)

	bytes[25] = uint8(values[4] >> 27)

	bytes[26] = uint8(values[4] >> 19)

	bytes[27] = uint8(values[4] >> 11)

	bytes[28] = uint8(values[4] >> 3)

	bytes[29] = uint8(values[4] << 5)
	bytes[29] |= uint8(values[5] >> 42)

	bytes[30] = uint8(values[5] >> 34)

	bytes[31] = uint8(values[5] >> 26)

	bytes[32] = uint8(values[5] >> 18)

	bytes[33] = uint8(values[5] >> 10)

	bytes[34] = uint8(values[5] >> 2)

	bytes[35] = uint8(values[5] << 6)
	bytes[35] |= uint8(values[6] >> 41)

	bytes[36] = uint8(values[6] >> 33)

	bytes[37] = uint8(values[6] >> 25)

	bytes[38] = uint8(values[6] >> 17)

	bytes[39] = uint8(values[6] >> 9)

	bytes[40] = uint8(values[6] >> 1)

	bytes[41] = uint8(values[6] << 7)
	bytes[41] |= uint8(values[7] >> 40)

	bytes[42] = uint8(values[7] >> 32)

	bytes[43] = uint8(values[7] >> 24)

	bytes[44] = uint8(values[7] >> 16)

	bytes[45] = uint8(values[7] >> 8)

	bytes[46] = uint8(values[7])
}

func packBlock48(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 40)

	bytes[1] = uint8(values[0] >> 32)

	bytes[2] = uint8(values[0] >> 24)

	bytes[3] = uint8(values[0] >> 16)

	bytes[4] = uint8(values[0] >> 8)

	bytes[5] = uint8(values[0])

	bytes[6] = uint8(values[1] >> 40)

	bytes[7] = uint8(values[1] >> 32)

	bytes[8] = uint8(values[1] >> 24)

	bytes[9] = uint8(values[1] >> 16)

	bytes[10] = uint8(values[1] >> 8)

	bytes[11] = uint8(values[1])

	bytes[12] = uint8(values[2] >> 40)

	bytes[13] = uint8(values[2] >> 32)

	bytes[14] = uint8(values[2] >> 24)

	bytes[15] = uint8(values[2] >> 16)

	bytes[16] = uint8(values[2] >> 8)

	bytes[17] = uint8(values[2])

	bytes[18] = uint8(values[3] >> 40)

	bytes[19] = uint8(values[3] >> 32)

	bytes[20] = uint8(values[3] >> 24)

	bytes[21] = uint8(values[3] >> 16)

	bytes[22] = uint8(values[3] >> 8)

	bytes[23] = uint8(values[3])

	bytes[24] = uint8(values[4] >> 40)

	bytes[25] = uint8(values[4] >> 32)

	bytes[26] = uint8(values[4] >> 24)

	bytes[27] = uint8(values[4] >> 16)

	bytes[28] = uint8(values[4] >> 8)

	bytes[29] = uint8(values[4])

	bytes[30] = uint8(values[5] >> 40)

	bytes[31] = uint8(values[5] >> 32)

	bytes[32] = uint8(values[5] >> 24)

	bytes[33] = uint8(values[5] >> 16)

	bytes[34] = uint8(values[5] >> 8)

	bytes[35] = uint8(values[5])

	bytes[36] = uint8(values[6] >> 40)

	bytes[37] = uint8(values[6] >> 32)

	bytes[38] = uint8(values[6] >> 24)

	bytes[39] = uint8(values[6] >> 16)

	bytes[40] = uint8(values[6] >> 8)

	bytes[41] = uint8(values[6])

	bytes[42] = uint8(values[7] >> 40)

	bytes[43] = uint8(values[7] >> 32)

	bytes[44] = uint8(values[7] >> 24)

	bytes[45] = uint8(values[7] >> 16)

	bytes[46] = uint8(values[7] >> 8)

	bytes[47] = uint8(values[7])
}

func packBlock49(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 41)

	bytes[1] = uint8(values[0] >> 33)

	bytes[2] = uint8(values[0] >> 25)

	bytes[3] = uint8(values[0] >> 17)

	bytes[4] = uint8(values[0] >> 9)

	bytes[5] = uint8(values[0] >> 1)

	bytes[6] = uint8(values[0] << 7)
	bytes[6] |= uint8(values[1] >> 42)

	bytes[7] = uint8(values[1] >> 34)

	bytes[8] = uint8(values[1] >> 26)

	bytes[9] = uint8(values[1] >> 18)

	bytes[10] = uint8(values[1] >> 10)

	bytes[11] = uint8(values[1] >> 2)

	bytes[12] = uint8(values[1] << 6)
	bytes[12] |= uint8(values[2] >> 43)

	bytes[13] = uint8(values[2] >> 35)

	bytes[14] = uint8(values[2] >> 27)

	bytes[15] = uint8(values[2] >> 19)

	bytes[16] = uint8(values[2] >> 11)

	bytes[17] = uint8(values[2] >> 3)

	bytes[18] = uint8(values[2] << 5)
	bytes[18] |= uint8(values[3] >> 44)

	bytes[19] = uint8(values[3] >> 36)

	bytes[20] = uint8(values[3] >> 28)

	bytes[21] = uint8(values[3] >> 20)

	bytes[22] = uint8(values[3] >> 12)

	bytes[23] = uint8(values[3] >> 4)

	bytes[24] = uint8(values[3] << 4)
	bytes[24] |= uint8(values[4] >> 45)

	bytes[25] = uint8(values[4] >> 37)

	bytes[26] = uint8(values[4] >> 29)

	bytes[27] = uint8(values[4] >> 21)

	bytes[28] = uint8(values[4] >> 13)

	bytes[29] = uint8(values[4] >> 5)

	bytes[30] = uint8(values[4] << 3)
	bytes[30] |= uint8(values[5] >> 46)

	bytes[31] = uint8(values[5] >> 38)

	bytes[32] = uint8(values[5] >> 30)

	bytes[33] = uint8(values[5] >> 22)

	bytes[34] = uint8(values[5] >> 14)

	bytes[35] = uint8(values[5] >> 6)

	bytes[36] = uint8(values[5] << 2)
	bytes[36] |= uint8(values[6] >> 47)

	bytes[37] = uint8(values[6] >> 39)

	bytes[38] = uint8(values[6] >> 31)

	bytes[39] = uint8(values[6] >> 23)

	bytes[40] = uint8(values[6] >> 15)

	bytes[41] = uint8(values[6] >> 7)

	bytes[42] = uint8(values[6] << 1)
	bytes[42] |= uint8(values[7] >> 48)

	bytes[43] = uint8(values[7] >> 40)

	bytes[44] = uint8(values[7] >> 32)

	bytes[45] = uint8(values[7] >> 24)

	bytes[46] = uint8(values[7] >> 16)

	bytes[47] = uint8(values[7] >> 8)

	bytes[48] = uint8(values[7])
}

func packBlock50(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 42)

	bytes[1] = uint8(values[0] >> 34)

	bytes[2] = uint8(values[0] >> 26)

	bytes[3] = uint8(values[0] >> 18)

	bytes[4] = uint8(values[0] >> 10)

	bytes[5] = uint8(values[0] >> 2)

	bytes[6] = uint8(values[0] << 6)
	bytes[6] |= uint8(values[1] >> 44)

	bytes[7] = uint8(values[1] >> 36)

	bytes[8] = uint8(values[1] >> 28)

	bytes[9] = uint8(values[1] >> 20)

	bytes[10] = uint8(values[1] >> 12)

	bytes[11] = uint8(values[1] >> 4)

	bytes[12] = uint8(values[1] << 4)
	bytes[12] |= uint8(values[2] >> 46)

	bytes[13] = uint8(values[2] >> 38)

	bytes[14] = uint8(values[2] >> 30)

	bytes[15] = uint8(values[2] >> 22)

	bytes[16] = uint8(values[2] >> 14)

	bytes[17] = uint8(values[2] >> 6)

	bytes[18] = uint8(values[2] << 2)
	bytes[18] |= uint8(values[3] >> 48)

	bytes[19] = uint8(values[3] >> 40)

	bytes[20] = uint8(values[3] >> 32)

	bytes[21] = uint8(values[3] >> 24)

	bytes[22] = uint8(values[3] >> 16)

	bytes[23] = uint8(values[3] >> 8)

	bytes[24] = uint8(values[3])

	bytes[25] = uint8(values[4] >> 42)

	bytes[26] = uint8(values[4] >> 34)

	bytes[27] = uint8(values[4] >> 26)

	bytes[28] = uint8(values[4] >> 18)

	bytes[29] = uint8(values[4] >> 10)

	bytes[30] = uint8(values[4] >> 2)

	bytes[31] = uint8(values[4] << 6)
	bytes[31] |= uint8(values[5] >> 44)

	bytes[32] = uint8(values[5] >> 36)

	bytes[33] = uint8(values[5] >> 28)

	bytes[34] = uint8(values[5] >> 20)

	bytes[35] = uint8(values[5] >> 12)

	bytes[36] = uint8(values[5] >> 4)

	bytes[37] = uint8(values[5] << 4)
	bytes[37] |= uint8(values[6] >> 46)

	bytes[38] = uint8(values[6] >> 38)

	bytes[39] = uint8(values[6] >> 30)

	bytes[40] = uint8(values[6] >> 22)

	bytes[41] = uint8(values[6] >> 14)

	bytes[42] = uint8(values[6] >> 6)

	bytes[43] = uint8(values[6] << 2)
	bytes[43] |= uint8(values[7] >> 48)

	bytes[44] = uint8(values[7] >> 40)

	bytes[45] = uint8(values[7] >> 32)

	bytes[46] = uint8(values[7] >> 24)

	bytes[47] = uint8(values[7] >> 16)

	bytes[48] = uint8(values[7] >> 8)

	bytes[49] = uint8(values[7])
}

func packBlock51(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 43)

	bytes[1] = uint8(values[0] >> 35)

	bytes[2] = uint8(values[0] >> 27)

	bytes[3] = uint8(values[0] >> 19)

	bytes[4] = uint8(values[0] >> 11)

	bytes[5] = uint8(values[0] >> 3)

	bytes[6] = uint8(values[0] << 5)
	bytes[6] |= uint8(values[1] >> 46)

	bytes[7] = uint8(values[1] >> 38)

	bytes[8] = uint8(values[1] >> 30)

	bytes[9] = uint8(values[1] >> 22)

	bytes[10] = uint8(values[1] >> 14)

	bytes[11] = uint8(values[1] >> 6)

	bytes[12] = uint8(values[1] << 2)
	bytes[12] |= uint8(values[2] >> 49)

	bytes[13] = uint8(values[2] >> 41)

	bytes[14] = uint8(values[2] >> 33)

	bytes[15] = uint8(values[2] >> 25)

	bytes[16] = uint8(values[2] >> 17)

	bytes[17] = uint8(values[2] >> 9)

	bytes[18] = uint8(values[2] >> 1)

	bytes[19] = uint8(values[2] << 7)
	bytes[19] |= uint8(values[3] >> 44)

	bytes[20] = uint8(values[3] >> 36)

	bytes[21] = uint8(values[3] >> 28)

	bytes[22] = uint8(values[3] >> 20)

	bytes[23] = uint8(values[3] >> 12)

	bytes[24] = uint8(values[3] >> 4)

	bytes[25] = uint8(values[3] << 4)
	bytes[25] |= uint8(values[4] >> 47)

	bytes[26] = uint8(values[4] >> 39)

	bytes[27] = uint8(values[4] >> 31)

	bytes[28] = uint8(values[4] >> 23)

	bytes[29] = uint8(values[4] >> 15)

	bytes[30] = uint8(values[4] >> 7)

	bytes[31] = uint8(values[4] << 1)
	bytes[31] |= uint8(values[5] >> 50)

	bytes[32] = uint8(values[5] >> 42)

	bytes[33] = uint8(values[5] >> 34)

	bytes[34] = uint8(values[5] >> 26)

	bytes[35] = uint8(values[5] >> 18)

	bytes[36] = uint8(values[5] >> 10)

	bytes[37] = uint8(values[5] >> 2)

	bytes[38] = uint8(values[5] << 6)
	bytes[38] |= uint8(values[6] >> 45)

	bytes[39] = uint8(values[6] >> 37)

	bytes[40] = uint8(values[6] >> 29)

	bytes[41] = uint8(values[6] >> 21)

	bytes[42] = uint8(values[6] >> 13)

	bytes[43] = uint8(values[6] >> 5)

	bytes[44] = uint8(values[6] << 3)
	bytes[44] |= uint8(values[7] >> 48)

	bytes[45] = uint8(values[7] >> 40)

	bytes[46] = uint8(values[7] >> 32)

	bytes[47] = uint8(values[7] >> 24)

	bytes[48] = uint8(values[7] >> 16)

	bytes[49] = uint8(values[7] >> 8)

	bytes[50] = uint8(values[7])
}

func packBlock52(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 44)

	bytes[1] = uint8(values[0] >> 36)

	bytes[2] = uint8(values[0] >> 28)

	bytes[3] = uint8(values[0] >> 20)

	bytes[4] = uint8(values[0] >> 12)

	bytes[5] = uint8(values[0] >> 4)

	bytes[6] = uint8(values[0] << 4)
	bytes[6] |= uint8(values[1] >> 48)

	bytes[7] = uint8(values[1] >> 40)

	bytes[8] = uint8(values[1] >> 32)

	bytes[9] = uint8(values[1] >> 24)

	bytes[10] = uint8(values[1] >> 16)

	bytes[11] = uint8(values[1] >> 8)

	bytes[12] = uint8(values[1])

	bytes[13] = uint8(values[2] >> 44)

	bytes[14] = uint8(values[2] >> 36)

	bytes[15] = uint8(values[2] >> 28)

	bytes[16] = uint8(values[2] >> 20)

	bytes[17] = uint8(values[2] >> 12)

	bytes[18] = uint8(values[2] >> 4)

	bytes[19] = uint8(values[2] << 4)
	bytes[19] |= uint8(values[3] >> 48)

	bytes[20] = uint8(values[3] >> 40)

	bytes[21] = uint8(values[3] >> 32)

	bytes[22] = uint8(values[3] >> 24)

	bytes[23] = uint8(values[3] >> 16)

	bytes[24] = uint8(values[3] >> 8)

	bytes[25] = uint8(values[3])

	bytes[26] = uint8(values[4] >> 44)

	bytes[27] = uint8(values[4] >> 36)

	bytes[28] = uint8(values[4] >> 28)

	bytes[29] = uint8(values[4] >> 20)

	bytes[30] = uint8(values[4] >> 12)

	bytes[31] = uint8(values[4] >> 4)

	bytes[32] = uint8(values[4] << 4)
	bytes[32] |= uint8(values[5] >> 48)

	bytes[33] = uint8(values[5] >> 40)

	bytes[34] = uint8(values[5] >> 32)

	bytes[35] = uint8(values[5] >> 24)

	bytes[36] = uint8(values[5] >> 16)

	bytes[37] = uint8(values[5] >> 8)

	bytes[38] = uint8(values[5])

	bytes[39] = uint8(values[6] >> 44)

	bytes[40] = uint8(values[6] >> 36)

	bytes[41] = uint8(values[6] >> 28)

	bytes[42] = uint8(values[6] >> 20)

	bytes[43] = uint8(values[6] >> 12)

	bytes[44] = uint8(values[6] >> 4)

	bytes[45] = uint8(values[6] << 4)
	bytes[45] |= uint8(values[7] >> 48)

	bytes[46] = uint8(values[7] >> 40)

	bytes[47] = uint8(values[7] >> 32)

	bytes[48] = uint8(values[7] >> 24)

	bytes[49] = uint8(values[7] >> 16)

	bytes[50] = uint8(values[7] >> 8)

	bytes[51] = uint8(values[7])
}

func packBlock53(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 45)

	bytes[1] = uint8(values[0] >> 37)

	bytes[2] = uint8(values[0] >> 29)

	bytes[3] = uint8(values[0] >> 21)

	bytes[4] = uint8(values[0] >> 13)

	bytes[5] = uint8(values[0] >> 5)

	bytes[6] = uint8(values[0] << 3)
	bytes[6] |= uint8(values[1] >> 50)

	bytes[7] = uint8(values[1] >> 42)

	bytes[8] = uint8(values[1] >> 34)

	bytes[9] = uint8(values[1] >> 26)

	bytes[10] = uint8(values[1] >> 18)

	bytes[11] = uint8(values[1] >> 10)

	bytes[12] = uint8(values[1] >> 2)

	bytes[13] = uint8(values[1] << 6)
	bytes[13] |= uint8(values[2] >> 47)

	bytes[14] = uint8(values[2] >> 39)

	bytes[15] = uint8(values[2] >> 31)

	bytes[16] = uint8(values[2] >> 23)

	bytes[17] = uint8(values[2] >> 15)

	bytes[18] = uint8(values[2] >> 7)

	bytes[19] = uint8(values[2] << 1)
	bytes[19] |= uint8(values[3] >> 52)

	bytes[20] = uint8(values[3] >> 44)

	bytes[21] = uint8(values[3] >> 36)

	bytes[22] = uint8(values[3] >> 28)

	bytes[23] = uint8(values[3] >> 20)

	bytes[24] = uint8(values[3] >> 12)

	bytes[25] = uint8(values[3] >> 4)

	bytes[26] = uint8(values[3] << 4)
	bytes[26] |= uint8(values[4] >> 49)

	bytes[27] = uint8(values[4] >> 41)

	bytes[28] = uint8(values[4] >> 33)

	bytes[29] = uint8(values[4] >> 25)

	bytes[30] = uint8(values[4] >> 17)

	bytes[31] = uint8(values[4] >> 9)

	bytes[32] = uint8(values[4] >> 1)

	bytes[33] = uint8(values[4] << 7)
	bytes[33] |= uint8(values[5] >> 46)

	bytes[34] = uint8(values[5] >> 38)

	bytes[35] = uint8(values[5] >> 30)

	bytes[36] = uint8(values[5] >> 22)

	bytes[37] = uint8(values[5] >> 14)

	bytes[38] = uint8(values[5] >> 6)

	bytes[39] = uint8(values[5] << 2)
	bytes[39] |= uint8(values[6] >> 51)

	bytes[40] = uint8(values[6] >> 43)

	bytes[41] = uint8(values[6] >> 35)

	bytes[42] = uint8(values[6] >> 27)

	bytes[43] = uint8(values[6] >> 19)

	bytes[44] = uint8(values[6] >> 11)

	bytes[45] = uint8(values[6] >> 3)

	bytes[46] = uint8(values[6] << 5)
	bytes[46] |= uint8(values[7] >> 48)

	bytes[47] = uint8(values[7] >> 40)

	bytes[48] = uint8(values[7] >> 32)

	bytes[49] = uint8(values[7] >> 24)

	bytes[50] = uint8(values[7] >> 16)

	bytes[51] = uint8(values[7] >> 8)

	bytes[52] = uint8(values[7])
}

func packBlock54(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 46)

	bytes[1] = uint8(values[0] >> 38)

	bytes[2] = uint8(values[0] >> 30)

	bytes[3] = uint8(values[0] >> 22)

	bytes[4] = uint8(values[0] >> 14)

	bytes[5] = uint8(values[0] >> 6)

	bytes[6] = uint8(values[0] << 2)
	bytes[6] |= uint8(values[1] >> 52)

	bytes[7] = uint8(values[1] >> 44)

	bytes[8] = uint8(values[1] >> 36)

	bytes[9] = uint8(values[1] >> 28)

	bytes[10] = uint8(values[1] >> 20)

	bytes[11] = uint8(values[1] >> 12)

	bytes[12] = uint8(values[1] >> 4)

	bytes[13] = uint8(values[1] << 4)
	bytes[13] |= uint8(values[2] >> 50)

	bytes[14] = uint8(values[2] >> 42)

	bytes[15] = uint8(values[2] >> 34)

	bytes[16] = uint8(values[2] >> 26)

	bytes[17] = uint8(values[2] >> 18)

	bytes[18] = uint8(values[2] >> 10)

	bytes[19] = uint8(values[2] >> 2)

	bytes[20] = uint8(values[2] << 6)
	bytes[20] |= uint8(values[3] >> 48)

	bytes[21] = uint8(values[3] >> 40)

	bytes[22] = uint8(values[3] >> 32)

	bytes[23] = uint8(values[3] >> 24)

	bytes[24] = uint8(values[3] >> 16)

	bytes[25] = uint8(values[3] >> 8)

	bytes[26] = uint8(values[3])

	bytes[27] = uint8(values[4] >> 46)

	bytes[28] = uint8(values[4] >> 38)

	bytes[29] = uint8(values[4] >> 30)

	bytes[30] = uint8(values[4] >> 22)

	bytes[31] = uint8(values[4] >> 14)

	bytes[32] = uint8(values[4] >> 6)

	bytes[33] = uint8(values[4] << 2)
	bytes[33] |= uint8(values[5] >> 52)

	bytes[34] = uint8(values[5] >> 44)

	bytes[35] = uint8(values[5] >> 36)

	bytes[36] = uint8(values[5] >> 28)

	bytes[37] = uint8(values[5] >> 20)

	bytes[38] = uint8(values[5] >> 12)

	bytes[39] = uint8(values[5] >> 4)

	bytes[40] = uint8(values[5] << 4)
	bytes[40] |= uint8(values[6] >> 50)

	bytes[41] = uint8(values[6] >> 42)

	bytes[42] = uint8(values[6] >> 34)

	bytes[43] = uint8(values[6] >> 26)

	bytes[44] = uint8(values[6] >> 18)

	bytes[45] = uint8(values[6] >> 10)

	bytes[46] = uint8(values[6] >> 2)

	bytes[47] = uint8(values[6] << 6)
	bytes[47] |= uint8(values[7] >> 48)

	bytes[48] = uint8(values[7] >> 40)

	bytes[49] = uint8(values[7] >> 32)

	bytes[50] = uint8(values[7] >> 24)

	bytes[51] = uint8(values[7] >> 16)

	bytes[52] = uint8(values[7] >> 8)

	bytes[53] = uint8(values[7])
}

func packBlock55(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 47)

	bytes[1] = uint8(values[0] >> 39)

	bytes[2] = uint8(values[0] >> 31)

	bytes[3] = uint8(values[0] >> 23)

	bytes[4] = uint8(values[0] >> 15)

	bytes[5] = uint8(values[0] >> 7)

	bytes[6] = uint8(values[0] << 1)
	bytes[6] |= uint8(values[1] >> 54)

	bytes[7] = uint8(values[1] >> 46)

	bytes[8] = uint8(values[1] >> 38)

	bytes[9] = uint8(values[1] >> 30)

	bytes[10] = uint8(values[1] >> 22)

	bytes[11] = uint8(values[1] >> 14)

	bytes[12] = uint8(values[1] >> 6)

	bytes[13] = uint8(values[1] << 2)
	bytes[13] |= uint8(values[2] >> 53)

	bytes[14] = uint8(values[2] >> 45)

	bytes[15] = uint8(values[2] >> 37)

	bytes[16] = uint8(values[2] >> 29)

	bytes[17] = uint8(values[2] >> 21)

	bytes[18] = uint8(values[2] >> 13)

	bytes[19] = uint8(values[2] >> 5)

	bytes[20] = uint8(values[2] << 3)
	bytes[20] |= uint8(values[3] >> 52)

	bytes[21] = uint8(values[3] >> 44)

	bytes[22] = uint8(values[3] >> 36)

	bytes[23] = uint8(values[3] >> 28)

	bytes[24] = uint8(values[3] >> 20)

	bytes[25] = uint8(values[3] >> 12)

	bytes[26] = uint8(values[3] >> 4)

	bytes[27] = uint8(values[3] << 4)
	bytes[27] |= uint8(values[4] >> 51)

	bytes[28] = uint8(values[4] >> 43)

	bytes[29] = uint8(values[4] >> 35)

	bytes[30] = uint8(values[4] >> 27)

	bytes[31] = uint8(values[4] >> 19)

	bytes[32] = uint8(values[4] >> 11)

	bytes[33] = uint8(values[4] >> 3)

	bytes[34] = uint8(values[4] << 5)
	bytes[34] |= uint8(values[5] >> 50)

	bytes[35] = uint8(values[5] >> 42)

	bytes[36] = uint8(values[5] >> 34)

	bytes[37] = uint8(values[5] >> 26)

	bytes[38] = uint8(values[5] >> 18)

	bytes[39] = uint8(values[5] >> 10)

	bytes[40] = uint8(values[5] >> 2)

	bytes[41] = uint8(values[5] << 6)
	bytes[41] |= uint8(values[6] >> 49)

	bytes[42] = uint8(values[6] >> 41)

	bytes[43] = uint8(values[6] >> 33)

	bytes[44] = uint8(values[6] >> 25)

	bytes[45] = uint8(values[6] >> 17)

	bytes[46] = uint8(values[6] >> 9)

	bytes[47] = uint8(values[6] >> 1)

	bytes[48] = uint8(values[6] << 7)
	bytes[48] |= uint8(values[7] >> 48)

	bytes[49] = uint8(values[7] >> 40)

	bytes[50] = uint8(values[7] >> 32)

	bytes[51] = uint8(values[7] >> 24)

	bytes[52] = uint8(values[7] >> 16)

	bytes[53] = uint8(values[7] >> 8)

	bytes[54] = uint8(values[7])
}

func packBlock56(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 48)

	bytes[1] = uint8(values[0] >> 40)

	bytes[2] = uint8(values[0] >> 32)

	bytes[3] = uint8(values[0] >> 24)

	bytes[4] = uint8(values[0] >> 16)

	bytes[5] = uint8(values[0] >> 8)

	bytes[6] = uint8(values[0])

	bytes[7] = uint8(values[1] >> 48)

	bytes[8] = uint8(values[1] >> 40)

	bytes[9] = uint8(values[1] >> 32)

	bytes[10] = uint8(values[1] >> 24)

	bytes[11] = uint8(values[1] >> 16)

	bytes[12] = uint8(values[1] >> 8)

	bytes[13] = uint8(values[1])

	bytes[14] = uint8(values[2] >> 48)

	bytes[15] = uint8(values[2] >> 40)

	bytes[16] = uint8(values[2] >> 32)

	bytes[17] = uint8(values[2] >> 24)

	bytes[18] = uint8(values[2] >> 16)

	bytes[19] = uint8(values[2] >> 8)

	bytes[20] = uint8(values[2])

	bytes[21] = uint8(values[3] >> 48)

	bytes[22] = uint8(values[3] >> 40)

	bytes[23] = uint8(values[3] >> 32)

	bytes[24] = uint8(values[3] >> 24)

	bytes[25] = uint8(values[3] >> 16)

	bytes[26] = uint8(values[3] >> 8)

	bytes[27] = uint8(values[3])

	bytes[28] = uint8(values[4] >> 48)

	bytes[29] = uint8(values[4] >> 40)

	bytes[30] = uint8(values[4] >> 32)

	bytes[31] = uint8(values[4] >> 24)

	bytes[32] = uint8(values[4] >> 16)

	bytes[33] = uint8(values[4] >> 8)

	bytes[34] = uint8(values[4])

	bytes[35] = uint8(values[5] >> 48)

	bytes[36] = uint8(values[5] >> 40)

	bytes[37] = uint8(values[5] >> 32)

	bytes[38] = uint8(values[5] >> 24)

	bytes[39] = uint8(values[5] >> 16)

	bytes[40] = uint8(values[5] >> 8)

	bytes[41] = uint8(values[5])

	bytes[42] = uint8(values[6] >> 48)

	bytes[43] = uint8(values[6] >> 40)

	bytes[44] = uint8(values[6] >> 32)

	bytes[45] = uint8(values[6] >> 24)

	bytes[46] = uint8(values[6] >> 16)

	bytes[47] = uint8(values[6] >> 8)

	bytes[48] = uint8(values[6])

	bytes[49] = uint8(values[7] >> 48)

	bytes[50] = uint8(values[7] >> 40)

	bytes[51] = uint8(values[7] >> 32)

	bytes[52] = uint8(values[7] >> 24)

	bytes[53] = uint8(values[7] >> 16)

	bytes[54] = uint8(values[7] >> 8)

	bytes[55] = uint8(values[7])
}

func packBlock57(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 49)

	bytes[1] = uint8(values[0] >> 41)

	bytes[2] = uint8(values[0] >> 33)

	bytes[3] = uint8(values[0] >> 25)

	bytes[4] = uint8(values[0] >> 17)

	bytes[5] = uint8(values[0] >> 9)

	bytes[6] = uint8(values[0] >> 1)

	bytes[7] = uint8(values[0] << 7)
	bytes[7] |= uint8(values[1] >> 50)

	bytes[8] = uint8(values[1] >> 42)

	bytes[9] = uint8(values[1] >> 34)

	bytes[10] = uint8(values[1] >> 26)

	bytes[11] = uint8(values[1] >> 18)

	bytes[12] = uint8(values[1] >> 10)

	bytes[13] = uint8(values[1] >> 2)

	bytes[14] = uint8(values[1] << 6)
	bytes[14] |= uint8(values[2] >> 51)

	bytes[15] = uint8(values[2] >> 43)

	bytes[16] = uint8(values[2] >> 35)

	bytes[17] = uint8(values[2] >> 27)

	bytes[18] = uint8(values[2] >> 19)

	bytes[19] = uint8(values[2] >> 11)

	bytes[20] = uint8(values[2] >> 3)

	bytes[21] = uint8(values[2] << 5)
	bytes[21] |= uint8(values[3] >> 52)

	bytes[22] = uint8(values[3] >> 44)

	bytes[23] = uint8(values[3] >> 36)

	bytes[24] = uint8(values[3] >> 28)

	bytes[25] = uint8(values[3] >> 20)

	bytes[26] = uint8(values[3] >> 12)

	bytes[27] = uint8(values[3] >> 4)

	bytes[28] = uint8(values[3] << 4)
	bytes[28] |= uint8(values[4] >> 53)

	bytes[29] = uint8(values[4] >> 45)

	bytes[30] = uint8(values[4] >> 37)

	bytes[31] = uint8(values[4] >> 29)

	bytes[32] = uint8(values[4] >> 21)

	bytes[33] = uint8(values[4] >> 13)

	bytes[34] = uint8(values[4] >> 5)

	bytes[35] = uint8(values[4] << 3)
	bytes[35] |= uint8(values[5] >> 54)

	bytes[36] = uint8(values[5] >> 46)

	bytes[37] = uint8(values[5] >> 38)

	bytes[38] = uint8(values[5] >> 30)

	bytes[39] = uint8(values[5] >> 22)

	bytes[40] = uint8(values[5] >> 14)

	bytes[41] = uint8(values[5] >> 6)

	bytes[42] = uint8(values[5] << 2)
	bytes[42] |= uint8(values[6] >> 55)

	bytes[43] = uint8(values[6] >> 47)

	bytes[44] = uint8(values[6] >> 39)

	bytes[45] = uint8(values[6] >> 31)

	bytes[46] = uint8(values[6] >> 23)

	bytes[47] = uint8(values[6] >> 15)

	bytes[48] = uint8(values[6] >> 7)

	bytes[49] = uint8(values[6] << 1)
	bytes[49] |= uint8(values[7] >> 56)

	bytes[50] = uint8(values[7] >> 48)

	bytes[51] = uint8(values[7] >> 40)

	bytes[52] = uint8(values[7] >> 32)

	bytes[53] = uint8(values[7] >> 24)

	bytes[54] = uint8(values[7] >> 16)

	bytes[55] = uint8(values[7] >> 8)

	bytes[56] = uint8(values[7])
}

func packBlock58(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 50)

	bytes[1] = uint8(values[0] >> 42)

	bytes[2] = uint8(values[0] >> 34)

	bytes[3] = uint8(values[0] >> 26)

	bytes[4] = uint8(values[0] >> 18)

	bytes[5] = uint8(values[0] >> 10)

	bytes[6] = uint8(values[0] >> 2)

	bytes[7] = uint8(values[0] << 6)
	bytes[7] |= uint8(values[1] >> 52)

	bytes[8] = uint8(values[1] >> 44)

	bytes[9] = uint8(values[1] >> 36)

	bytes[10] = uint8(values[1] >> 28)

	bytes[11] = uint8(values[1] >> 20)

	bytes[12] = uint8(values[1] >> 12)

	bytes[13] = uint8(values[1] >> 4)

	bytes[14] = uint8(values[1] << 4)
	bytes[14] |= uint8(values[2] >> 54)

	bytes[15] = uint8(values[2] >> 46)

	bytes[16] = uint8(values[2] >> 38)

	bytes[17] = uint8(values[2] >> 30)

	bytes[18] = uint8(values[2] >> 22)

	bytes[19] = uint8(values[2] >> 14)

	bytes[20] = uint8(values[2] >> 6)

	bytes[21] = uint8(values[2] << 2)
	bytes[21] |= uint8(values[3] >> 56)

	bytes[22] = uint8(values[3] >> 48)

	bytes[23] = uint8(values[3] >> 40)

	bytes[24] = uint8(values[3] >> 32)

	bytes[25] = uint8(values[3] >> 24)

	bytes[26] = uint8(values[3] >> 16)

	bytes[27] = uint8(values[3] >> 8)

	bytes[28] = uint8(values[3])

	bytes[29] = uint8(values[4] >> 50)

	bytes[30] = uint8(values[4] >> 42)

	bytes[31] = uint8(values[4] >> 34)

	bytes[32] = uint8(values[4] >> 26)

	bytes[33] = uint8(values[4] >> 18)

	bytes[34] = uint8(values[4] >> 10)

	bytes[35] = uint8(values[4] >> 2)

	bytes[36] = uint8(values[4] << 6)
	bytes[36] |= uint8(values[5] >> 52)

	bytes[37] = uint8(values[5] >> 44)

	bytes[38] = uint8(values[5] >> 36)

	bytes[39] = uint8(values[5] >> 28)

	bytes[40] = uint8(values[5] >> 20)

	bytes[41] = uint8(values[5] >> 12)

	bytes[42] = uint8(values[5] >> 4)

	bytes[43] = uint8(values[5] << 4)
	bytes[43] |= uint8(values[6] >> 54)

	bytes[44] = uint8(values[6] >> 46)

	bytes[45] = uint8(values[6] >> 38)

	bytes[46] = uint8(values[6] >> 30)

	bytes[47] = uint8(values[6] >> 22)

	bytes[48] = uint8(values[6] >> 14)

	bytes[49] = uint8(values[6] >> 6)

	bytes[50] = uint8(values[6] << 2)
	bytes[50] |= uint8(values[7] >> 56)

	bytes[51] = uint8(values[7] >> 48)

	bytes[52] = uint8(values[7] >> 40)

	bytes[53] = uint8(values[7] >> 32)

	bytes[54] = uint8(values[7] >> 24)

	bytes[55] = uint8(values[7] >> 16)

	bytes[56] = uint8(values[7] >> 8)

	bytes[57] = uint8(values[7])
}

func packBlock59(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 51)

	bytes[1] = uint8(values[0] >> 43)

	bytes[2] = uint8(values[0] >> 35)

	bytes[3] = uint8(values[0] >> 27)

	bytes[4] = uint8(values[0] >> 19)

	bytes[5] = uint8(values[0] >> 11)

	bytes[6] = uint8(values[0] >> 3)

	bytes[7] = uint8(values[0] << 5)
	bytes[7] |= uint8(values[1] >> 54)

	bytes[8] = uint8(values[1] >> 46)

	bytes[9] = uint8(values[1] >> 38)

	bytes[10] = uint8(values[1] >> 30)

	bytes[11] = uint8(values[1] >> 22)

	bytes[12] = uint8(values[1] >> 14)

	bytes[13] = uint8(values[1] >> 6)

	bytes[14] = uint8(values[1] << 2)
	bytes[14] |= uint8(values[2] >> 57)

	bytes[15] = uint8(values[2] >> 49)

	bytes[16] = uint8(values[2] >> 41)

	bytes[17] = uint8(values[2] >> 33)

	bytes[18] = uint8(values[2] >> 25)

	bytes[19] = uint8(values[2] >> 17)

	bytes[20] = uint8(values[2] >> 9)

	bytes[21] = uint8(values[2] >> 1)

	bytes[22] = uint8(values[2] << 7)
	bytes[22] |= uint8(values[3] >> 52)

	bytes[23] = uint8(values[3] >> 44)

	bytes[24] = uint8(values[3] >> 36)

	bytes[25] = uint8(values[3] >> 28)

	bytes[26] = uint8(values[3] >> 20)

	bytes[27] = uint8(values[3] >> 12)

	bytes[28] = uint8(values[3] >> 4)

	bytes[29] = uint8(values[3] << 4)
	bytes[29] |= uint8(values[4] >> 55)

	bytes[30] = uint8(values[4] >> 47)

	bytes[31] = uint8(values[4] >> 39)

	bytes[32] = uint8(values[4] >> 31)

	bytes[33] = uint8(values[4] >> 23)

	bytes[34] = uint8(values[4] >> 15)

	bytes[35] = uint8(values[4] >> 7)

	bytes[36] = uint8(values[4] << 1)
	bytes[36] |= uint8(values[5] >> 58)

	bytes[37] = uint8(values[5] >> 50)

	bytes[38] = uint8(values[5] >> 42)

	bytes[39] = uint8(values[5] >> 34)

	bytes[40] = uint8(values[5] >> 26)

	bytes[41] = uint8(values[5] >> 18)

	bytes[42] = uint8(values[5] >> 10)

	bytes[43] = uint8(values[5] >> 2)

	bytes[44] = uint8(values[5] << 6)
	bytes[44] |= uint8(values[6] >> 53)

	bytes[45] = uint8(values[6] >> 45)

	bytes[46] = uint8(values[6] >> 37)

	bytes[47] = uint8(values[6] >> 29)

	bytes[48] = uint8(values[6] >> 21)

	bytes[49] = uint8(values[6] >> 13)

	bytes[50] = uint8(values[6] >> 5)

	bytes[51] = uint8(values[6] << 3)
	bytes[51] |= uint8(values[7] >> 56)

	bytes[52] = uint8(values[7] >> 48)

	bytes[53] = uint8(values[7] >> 40)

	bytes[54] = uint8(values[7] >> 32)

	bytes[55] = uint8(values[7] >> 24)

	bytes[56] = uint8(values[7] >> 16)

	bytes[57] = uint8(values[7] >> 8)

	bytes[58] = uint8(values[7])
}

func packBlock60(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 52)

	bytes[1] = uint8(values[0] >> 44)

	bytes[2] = uint8(values[0] >> 36)

	bytes[3] = uint8(values[0] >> 28)

	bytes[4] = uint8(values[0] >> 20)

	bytes[5] = uint8(values[0] >> 12)

	bytes[6] = uint8(values[0] >> 4)

	bytes[7] = uint8(values[0] << 4)
	bytes[7] |= uint8(values[1] >> 56)

	bytes[8] = uint8(values[1] >> 48)

	bytes[9] = uint8(values[1] >> 40)

	bytes[10] = uint8(values[1] >> 32)

	bytes[11] = uint8(values[1] >> 24)

	bytes[12] = uint8(values[1] >> 16)

	bytes[13] = uint8(values[1] >> 8)

	bytes[14] = uint8(values[1])

	bytes[15] = uint8(values[2] >> 52)

	bytes[16] = uint8(values[2] >> 44)

	bytes[17] = uint8(values[2] >> 36)

	bytes[18] = uint8(values[2] >> 28)

	bytes[19] = uint8(values[2] >> 20)

	bytes[20] = uint8(values[2] >> 12)

	bytes[21] = uint8(values[2] >> 4)

	bytes[22] = uint8(values[2] << 4)
	bytes[22] |= uint8(values[3] >> 56)

	bytes[23] = uint8(values[3] >> 48)

	bytes[24] = uint8(values[3] >> 40)

	bytes[25] = uint8(values[3] >> 32)

	bytes[26] = uint8(values[3] >> 24)

	bytes[27] = uint8(values[3] >> 16)

	bytes[28] = uint8(values[3] >> 8)

	bytes[29] = uint8(values[3])

	bytes[30] = uint8(values[4] >> 52)

	bytes[31] = uint8(values[4] >> 44)

	bytes[32] = uint8(values[4] >> 36)

	bytes[33] = uint8(values[4] >> 28)

	bytes[34] = uint8(values[4] >> 20)

	bytes[35] = uint8(values[4] >> 12)

	bytes[36] = uint8(values[4] >> 4)

	bytes[37] = uint8(values[4] << 4)
	bytes[37] |= uint8(values[5] >> 56)

	bytes[38] = uint8(values[5] >> 48)

	bytes[39] = uint8(values[5] >> 40)

	bytes[40] = uint8(values[5] >> 32)

	bytes[41] = uint8(values[5] >> 24)

	bytes[42] = uint8(values[5] >> 16)

	bytes[43] = uint8(values[5] >> 8)

	bytes[44] = uint8(values[5])

	bytes[45] = uint8(values[6] >> 52)

	bytes[46] = uint8(values[6] >> 44)

	bytes[47] = uint8(values[6] >> 36)

	bytes[48] = uint8(values[6] >> 28)

	bytes[49] = uint8(values[6] >> 20)

	bytes[50] = uint8(values[6] >> 12)

	bytes[51] = uint8(values[6] >> 4)

	bytes[52] = uint8(values[6] << 4)
	bytes[52] |= uint8(values[7] >> 56)

	bytes[53] = uint8(values[7] >> 48)

	bytes[54] = uint8(values[7] >> 40)

	bytes[55] = uint8(values[7] >> 32)

	bytes[56] = uint8(values[7] >> 24)

	bytes[57] = uint8(values[7] >> 16)

	bytes[58] = uint8(values[7] >> 8)

	bytes[59] = uint8(values[7])
}

func packBlock61(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 53)

	bytes[1] = uint8(values[0] >> 45)

	bytes[2] = uint8(values[0] >> 37)

	bytes[3] = uint8(values[0] >> 29)

	bytes[4] = uint8(values[0] >> 21)

	bytes[5] = uint8(values[0] >> 13)

	bytes[6] = uint8(values[0] >> 5)

	bytes[7] = uint8(values[0] << 3)
	bytes[7] |= uint8(values[1] >> 58)

	bytes[8] = uint8(values[1] >> 50)

	bytes[9] = uint8(values[1] >> 42)

	bytes[10] = uint8(values[1] >> 34)

	bytes[11] = uint8(values[1] >> 26)

	bytes[12] = uint8(values[1] >> 18)

	bytes[13] = uint8(values[1] >> 10)

	bytes[14] = uint8(values[1] >> 2)

	bytes[15] = uint8(values[1] << 6)
	bytes[15] |= uint8(values[2] >> 55)

	bytes[16] = uint8(values[2] >> 47)

	bytes[17] = uint8(values[2] >> 39)

	bytes[18] = uint8(values[2] >> 31)

	bytes[19] = uint8(values[2] >> 23)

	bytes[20] = uint8(values[2] >> 15)

	bytes[21] = uint8(values[2] >> 7)

	bytes[22] = uint8(values[2] << 1)
	bytes[22] |= uint8(values[3] >> 60)

	bytes[23] = uint8(values[3] >> 52)

	bytes[24] = uint8(values[3] >> 44)

	bytes[25] = uint8(values[3] >> 36)

	bytes[26] = uint8(values[3] >> 28)

	bytes[27] = uint8(values[3] >> 20)

	bytes[28] = uint8(values[3] >> 12)

	bytes[29] = uint8(values[3] >> 4)

	bytes[30] = uint8(values[3] << 4)
	bytes[30] |= uint8(values[4] >> 57)

	bytes[31] = uint8(values[4] >> 49)

	bytes[32] = uint8(values[4] >> 41)

	bytes[33] = uint8(values[4] >> 33)

	bytes[34] = uint8(values[4] >> 25)

	bytes[35] = uint8(values[4] >> 17)

	bytes[36] = uint8(values[4] >> 9)

	bytes[37] = uint8(values[4] >> 1)

	bytes[38] = uint8(values[4] << 7)
	bytes[38] |= uint8(values[5] >> 54)

	bytes[39] = uint8(values[5] >> 46)

	bytes[40] = uint8(values[5] >> 38)

	bytes[41] = uint8(values[5] >> 30)

	bytes[42] = uint8(values[5] >> 22)

	bytes[43] = uint8(values[5] >> 14)

	bytes[44] = uint8(values[5] >> 6)

	bytes[45] = uint8(values[5] << 2)
	bytes[45] |= uint8(values[6] >> 59)

	bytes[46] = uint8(values[6] >> 51)

	bytes[47] = uint8(values[6] >> 43)

	bytes[48] = uint8(values[6] >> 35)

	bytes[49] = uint8(values[6] >> 27)

	bytes[50] = uint8(values[6] >> 19)

	bytes[51] = uint8(values[6] >> 11)

	bytes[52] = uint8(values[6] >> 3)

	bytes[53] = uint8(values[6] << 5)
	bytes[53] |= uint8(values[7] >> 56)

	bytes[54] = uint8(values[7] >> 48)

	bytes[55] = uint8(values[7] >> 40)

	bytes[56] = uint8(values[7] >> 32)

	bytes[57] = uint8(values[7] >> 24)

	bytes[58] = uint8(values[7] >> 16)

	bytes[59] = uint8(values[7] >> 8)

	bytes[60] = uint8(values[7])
}

func packBlock62(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 54)

	bytes[1] = uint8(values[0] >> 46)

	bytes[2] = uint8(values[0] >> 38)

	bytes[3] = uint8(values[0] >> 30)

	bytes[4] = uint8(values[0] >> 22)

	bytes[5] = uint8(values[0] >> 14)

	bytes[6] = uint8(values[0] >> 6)

	bytes[7] = uint8(values[0] << 2)
	bytes[7] |= uint8(values[1] >> 60)

	bytes[8] = uint8(values[1] >> 52)

	bytes[9] = uint8(values[1] >> 44)

	bytes[10] = uint8(values[1] >> 36)

	bytes[11] = uint8(values[1] >> 28)

	bytes[12] = uint8(values[1] >> 20)

	bytes[13] = uint8(values[1] >> 12)

	bytes[14] = uint8(values[1] >> 4)

	bytes[15] = uint8(values[1] << 4)
	bytes[15] |= uint8(values[2] >> 58)

	bytes[16] = uint8(values[2] >> 50)

	bytes[17] = uint8(values[2] >> 42)

	bytes[18] = uint8(values[2] >> 34)

	bytes[19] = uint8(values[2] >> 26)

	bytes[20] = uint8(values[2] >> 18)

	bytes[21] = uint8(values[2] >> 10)

	bytes[22] = uint8(values[2] >> 2)

	bytes[23] = uint8(values[2] << 6)
	bytes[23] |= uint8(values[3] >> 56)

	bytes[24] = uint8(values[3] >> 48)

	bytes[25] = uint8(values[3] >> 40)

	bytes[26] = uint8(values[3] >> 32)

	bytes[27] = uint8(values[3] >> 24)

	bytes[28] = uint8(values[3] >> 16)

	bytes[29] = uint8(values[3] >> 8)

	bytes[30] = uint8(values[3])

	bytes[31] = uint8(values[4] >> 54)

	bytes[32] = uint8(values[4] >> 46)

	bytes[33] = uint8(values[4] >> 38)

	bytes[34] = uint8(values[4] >> 30)

	bytes[35] = uint8(values[4] >> 22)

	bytes[36] = uint8(values[4] >> 14)

	bytes[37] = uint8(values[4] >> 6)

	bytes[38] = uint8(values[4] << 2)
	bytes[38] |= uint8(values[5] >> 60)

	bytes[39] = uint8(values[5] >> 52)

	bytes[40] = uint8(values[5] >> 44)

	bytes[41] = uint8(values[5] >> 36)

	bytes[42] = uint8(values[5] >> 28)

	bytes[43] = uint8(values[5] >> 20)

	bytes[44] = uint8(values[5] >> 12)

	bytes[45] = uint8(values[5] >> 4)

	bytes[46] = uint8(values[5] << 4)
	bytes[46] |= uint8(values[6] >> 58)

	bytes[47] = uint8(values[6] >> 50)

	bytes[48] = uint8(values[6] >> 42)

	bytes[49] = uint8(values[6] >> 34)

	bytes[50] = uint8(values[6] >> 26)

	bytes[51] = uint8(values[6] >> 18)

	bytes[52] = uint8(values[6] >> 10)

	bytes[53] = uint8(values[6] >> 2)

	bytes[54] = uint8(values[6] << 6)
	bytes[54] |= uint8(values[7] >> 56)

	bytes[55] = uint8(values[7] >> 48)

	bytes[56] = uint8(values[7] >> 40)

	bytes[57] = uint8(values[7] >> 32)

	bytes[58] = uint8(values[7] >> 24)

	bytes[59] = uint8(values[7] >> 16)

	bytes[60] = uint8(values[7] >> 8)

	bytes[61] = uint8(values[7])
}

func packBlock63(values []uint64, bytes []byte) {
	bytes[0] = uint8(values[0] >> 55)

	bytes[1] = uint8(values[0] >> 47)

	bytes[2] = uint8(values[0] >> 39)

	bytes[3] = uint8(values[0] >> 31)

	bytes[4] = uint8(values[0] >> 23)

	bytes[5] = uint8(values[0] >> 15)

	bytes[6] = uint8(values[0] >> 7)

	bytes[7] = uint8(values[0] << 1)
	bytes[7] |= uint8(values[1] >> 62)

	bytes[8] = uint8(values[1] >> 54)

	bytes[9] = uint8(values[1] >> 46)

	bytes[10] = uint8(values[1] >> 38)

	bytes[11] = uint8(values[1] >> 30)

	bytes[12] = uint8(values[1] >> 22)

	bytes[13] = uint8(values[1] >> 14)

	bytes[14] = uint8(values[1] >> 6)

	bytes[15] = uint8(values[1] << 2)
	bytes[15] |= uint8(values[2] >> 61)

	bytes[16] = uint8(values[2] >> 53)

	bytes[17] = uint8(values[2] >> 45)

	bytes[18] = uint8(values[2] >> 37)

	bytes[19] = uint8(values[2] >> 29)

	bytes[20] = uint8(values[2] >> 21)

	bytes[21] = uint8(values[2] >> 13)

	bytes[22] = uint8(values[2] >> 5)

	bytes[23] = uint8(values[2] << 3)
	bytes[23] |= uint8(values[3] >> 60)

	bytes[24] = uint8(values[3] >> 52)

	bytes[25] = uint8(values[3] >> 44)

	bytes[26] = uint8(values[3] >> 36)

	bytes[27] = uint8(values[3] >> 28)

	bytes[28] = uint8(values[3] >> 20)

	bytes[29] = uint8(values[3] >> 12)

	bytes[30] = uint8(values[3] >> 4)

	bytes[31] = uint8(values[3] << 4)
	bytes[31] |= uint8(values[4] >> 59)

	bytes[32] = uint8(values[4] >> 51)

	bytes[33] = uint8(values[4] >> 43)

	bytes[34] = uint8(values[4] >> 35)

	bytes[35] = uint8(values[4] >> 27)

	bytes[36] = uint8(values[4] >> 19)

	bytes[37] = uint8(values[4] >> 11)

	bytes[38] = uint8(values[4] >> 3)

	bytes[39] = uint8(values[4] << 5)
	bytes[39] |= uint8(values[5] >> 58)

	bytes[40] = uint8(values[5] >> 50)

	bytes[41] = uint8(values[5] >> 42)

	bytes[42] = uint8(values[5] >> 34)

	bytes[43] = uint8(values[5] >> 26)

	bytes[44] = uint8(values[5] >> 18)

	bytes[45] = uint8(values[5] >> 10)

	bytes[46] = uint8(values[5] >> 2)

	bytes[47] = uint8(values[5] << 6)
	bytes[47] |= uint8(values[6] >> 57)

	bytes[48] = uint8(values[6] >> 49)

	bytes[49] = uint8(values[6] >> 41)

	bytes[50] = uint8(values[6] >> 33)

	bytes[51] = uint8(values[6] >> 25)

	bytes[52] = uint8(values[6] >> 17)

	bytes[53] = uint8(values[6] >> 9)

	bytes[54] = uint8(values[6] >> 1)

	bytes[55] = uint8(values[6] << 7)
	bytes[55] |= uint8(values[7] >> 56)

	bytes[56] = uint8(values[7] >> 48)

	bytes[57] = uint8(values[7] >> 40)

	bytes[58] = uint8(values[7] >> 32)

	bytes[59] = uint8(values[7] >> 24)

	bytes[60] = uint8(values[7] >> 16)

	bytes[61] = uint8(values[7] >> 8)

	bytes[62] = uint8(values[7])
}
