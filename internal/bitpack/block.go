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

// PackBlock8 packs exactly 8 values at the given bit width into bytes.
// The output buffer must hold at least `bits` bytes. Widths outside
// [1, 63] are rejected.
func PackBlock8(values []uint64, bytes []byte, bits uint8) error {
	switch bits {
	case 1:
		packBlock1(values, bytes)
	case 2:
		packBlock2(values, bytes)
	case 3:
		packBlock3(values, bytes)
	case 4:
		packBlock4(values, bytes)
	case 5:
		packBlock5(values, bytes)
	case 6:
		packBlock6(values, bytes)
	case 7:
		packBlock7(values, bytes)
	case 8:
		packBlock8(values, bytes)
	case 9:
		packBlock9(values, bytes)
	case 10:
		packBlock10(values, bytes)
	case 11:
		packBlock11(values, bytes)
	case 12:
		packBlock12(values, bytes)
	case 13:
		packBlock13(values, bytes)
	case 14:
		packBlock14(values, bytes)
	case 15:
		packBlock15(values, bytes)
	case 16:
		packBlock16(values, bytes)
	case 17:
		packBlock17(values, bytes)
	case 18:
		packBlock18(values, bytes)
	case 19:
		packBlock19(values, bytes)
	case 20:
		packBlock20(values, bytes)
	case 21:
		packBlock21(values, bytes)
	case 22:
		packBlock22(values, bytes)
	case 23:
		packBlock23(values, bytes)
	case 24:
		packBlock24(values, bytes)
	case 25:
		packBlock25(values, bytes)
	case 26:
		packBlock26(values, bytes)
	case 27:
		packBlock27(values, bytes)
	case 28:
		packBlock28(values, bytes)
	case 29:
		packBlock29(values, bytes)
	case 30:
		packBlock30(values, bytes)
	case 31:
		packBlock31(values, bytes)
	case 32:
		packBlock32(values, bytes)
	case 33:
		packBlock33(values, bytes)
	case 34:
		packBlock34(values, bytes)
	case 35:
		packBlock35(values, bytes)
	case 36:
		packBlock36(values, bytes)
	case 37:
		packBlock37(values, bytes)
	case 38:
		packBlock38(values, bytes)
	case 39:
		packBlock39(values, bytes)
	case 40:
		packBlock40(values, bytes)
	case 41:
		packBlock41(values, bytes)
	case 42:
		packBlock42(values, bytes)
	case 43:
		packBlock43(values, bytes)
	case 44:
		packBlock44(values, bytes)
	case 45:
		packBlock45(values, bytes)
	case 46:
		packBlock46(values, bytes)
	case 47:
		packBlock47(values, bytes)
	case 48:
		packBlock48(values, bytes)
	case 49:
		packBlock49(values, bytes)
	case 50:
		packBlock50(values, bytes)
	case 51:
		packBlock51(values, bytes)
	case 52:
		packBlock52(values, bytes)
	case 53:
		packBlock53(values, bytes)
	case 54:
		packBlock54(values, bytes)
	case 55:
		packBlock55(values, bytes)
	case 56:
		packBlock56(values, bytes)
	case 57:
		packBlock57(values, bytes)
	case 58:
		packBlock58(values, bytes)
	case 59:
		packBlock59(values, bytes)
	case 60:
		packBlock60(values, bytes)
	case 61:
		packBlock61(values, bytes)
	case 62:
		packBlock62(values, bytes)
	case 63:
		packBlock63(values, bytes)
	default:
		return ErrBlockBits
	}
	return nil
}

// UnpackBlock8 unpacks exactly 8 values at the given bit width from bytes,
// the inverse of PackBlock8.
func UnpackBlock8(values []uint64, bytes []byte, bits uint8) error {
	switch bits {
	case 1:
		unpackBlock1(values, bytes)
	case 2:
		unpackBlock2(values, bytes)
	case 3:
		unpackBlock3(values, bytes)
	case 4:
		unpackBlock4(values, bytes)
	case 5:
		unpackBlock5(values, bytes)
	case 6:
		unpackBlock6(values, bytes)
	case 7:
		unpackBlock7(values, bytes)
	case 8:
		unpackBlock8(values, bytes)
	case 9:
		unpackBlock9(values, bytes)
	case 10:
		unpackBlock10(values, bytes)
	case 11:
		unpackBlock11(values, bytes)
	case 12:
		unpackBlock12(values, bytes)
	case 13:
		unpackBlock13(values, bytes)
	case 14:
		unpackBlock14(values, bytes)
	case 15:
		unpackBlock15(values, bytes)
	case 16:
		unpackBlock16(values, bytes)
	case 17:
		unpackBlock17(values, bytes)
	case 18:
		unpackBlock18(values, bytes)
	case 19:
		unpackBlock19(values, bytes)
	case 20:
		unpackBlock20(values, bytes)
	case 21:
		unpackBlock21(values, bytes)
	case 22:
		unpackBlock22(values, bytes)
	case 23:
		unpackBlock23(values, bytes)
	case 24:
		unpackBlock24(values, bytes)
	case 25:
		unpackBlock25(values, bytes)
	case 26:
		unpackBlock26(values, bytes)
	case 27:
		unpackBlock27(values, bytes)
	case 28:
		unpackBlock28(values, bytes)
	case 29:
		unpackBlock29(values, bytes)
	case 30:
		unpackBlock30(values, bytes)
	case 31:
		unpackBlock31(values, bytes)
	case 32:
		unpackBlock32(values, bytes)
	case 33:
		unpackBlock33(values, bytes)
	case 34:
		unpackBlock34(values, bytes)
	case 35:
		unpackBlock35(values, bytes)
	case 36:
		unpackBlock36(values, bytes)
	case 37:
		unpackBlock37(values, bytes)
	case 38:
		unpackBlock38(values, bytes)
	case 39:
		unpackBlock39(values, bytes)
	case 40:
		unpackBlock40(values, bytes)
	case 41:
		unpackBlock41(values, bytes)
	case 42:
		unpackBlock42(values, bytes)
	case 43:
		unpackBlock43(values, bytes)
	case 44:
		unpackBlock44(values, bytes)
	case 45:
		unpackBlock45(values, bytes)
	case 46:
		unpackBlock46(values, bytes)
	case 47:
		unpackBlock47(values, bytes)
	case 48:
		unpackBlock48(values, bytes)
	case 49:
		unpackBlock49(values, bytes)
	case 50:
		unpackBlock50(values, bytes)
	case 51:
		unpackBlock51(values, bytes)
	case 52:
		unpackBlock52(values, bytes)
	case 53:
		unpackBlock53(values, bytes)
	case 54:
		unpackBlock54(values, bytes)
	case 55:
		unpackBlock55(values, bytes)
	case 56:
		unpackBlock56(values, bytes)
	case 57:
		unpackBlock57(values, bytes)
	case 58:
		unpackBlock58(values, bytes)
	case 59:
		unpackBlock59(values, bytes)
	case 60:
		unpackBlock60(values, bytes)
	case 61:
		unpackBlock61(values, bytes)
	case 62:
		unpackBlock62(values, bytes)
	case 63:
		unpackBlock63(values, bytes)
	default:
		return ErrBlockBits
	}
	return nil
}
