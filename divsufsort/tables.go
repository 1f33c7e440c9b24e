package divsufsort

// Sizing constants for the ss and tr sub-sorters. SPEC_FULL.md section 4
// fixes these values (and what each one gates); they deviate from the
// reference divsufsort implementation's own defaults on purpose.
const (
	ssInsertionSortThreshold = int32(8)
	ssBlockSize              = int32(1024)
	ssMisortStackSize        = int32(16)
	ssSmergeStackSize        = int32(32)
	trStackSize              = int32(8192)
	trInsertionSortThreshold = int32(8)
	maskFFFF0000             = -65536    // keep 32-bit arithmetic well defined
	maskFF000000             = -16777216 // keep 32-bit arithmetic well defined
	mask0000FF00             = 65280     // keep 32-bit arithmetic well defined
)

// sqqTable is a 256-entry table of floor(16*sqrt(x)), used by
// ssIsqrt to seed a Newton refinement. Must match the reference divsufsort
// table verbatim; partition sizing depends on the exact quantisation.
var sqqTable = []int32{
	0, 16, 22, 27, 32, 35, 39, 42, 45, 48, 50, 53, 55, 57, 59, 61, 64, 65, 67, 69,
	71, 73, 75, 76, 78, 80, 81, 83, 84, 86, 87, 89, 90, 91, 93, 94, 96, 97, 98, 99,
	101, 102, 103, 104, 106, 107, 108, 109, 110, 112, 113, 114, 115, 116, 117, 118,
	119, 120, 121, 122, 123, 124, 125, 126, 128, 128, 129, 130, 131, 132, 133, 134,
	135, 136, 137, 138, 139, 140, 141, 142, 143, 144, 144, 145, 146, 147, 148, 149,
	150, 150, 151, 152, 153, 154, 155, 155, 156, 157, 158, 159, 160, 160, 161, 162,
	163, 163, 164, 165, 166, 167, 167, 168, 169, 170, 170, 171, 172, 173, 173, 174,
	175, 176, 176, 177, 178, 178, 179, 180, 181, 181, 182, 183, 183, 184, 185, 185,
	186, 187, 187, 188, 189, 189, 190, 191, 192, 192, 193, 193, 194, 195, 195, 196,
	197, 197, 198, 199, 199, 200, 201, 201, 202, 203, 203, 204, 204, 205, 206, 206,
	207, 208, 208, 209, 209, 210, 211, 211, 212, 212, 213, 214, 214, 215, 215, 216,
	217, 217, 218, 218, 219, 219, 220, 221, 221, 222, 222, 223, 224, 224, 225, 225,
	226, 226, 227, 227, 228, 229, 229, 230, 230, 231, 231, 232, 232, 233, 234, 234,
	235, 235, 236, 236, 237, 237, 238, 238, 239, 240, 240, 241, 241, 242, 242, 243,
	243, 244, 244, 245, 245, 246, 246, 247, 247, 248, 248, 249, 249, 250, 250, 251,
	251, 252, 252, 253, 253, 254, 254, 255,
}

// logTable is a 256-entry table of floor(log2(x)), -1 at x=0. Must match the
// reference divsufsort table verbatim.
var logTable = []int32{
	-1, 0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
}

// ssIlg returns floor(log2(n)) via logTable.
func ssIlg(n int32) int32 {
	if n&0xFF00 != 0 {
		return 8 + logTable[(n>>8)&0xFF]
	}

	return logTable[n&0xFF]
}

// trIlg returns floor(log2(n)) via logTable, extended to 32-bit range.
func trIlg(n int32) int32 {
	if n&maskFFFF0000 != 0 {
		if n&maskFF000000 != 0 {
			return 24 + logTable[(n>>24)&0xFF]
		}

		return 16 + logTable[(n>>16)&0xFF]
	}

	if n&mask0000FF00 != 0 {
		return 8 + logTable[(n>>8)&0xFF]
	}

	return logTable[n&0xFF]
}

// ssIsqrt returns floor(sqrt(x)) for x < ssBlockSize^2, using sqqTable to
// seed one or two Newton refinements.
func ssIsqrt(x int32) int32 {
	if x >= ssBlockSize*ssBlockSize {
		return ssBlockSize
	}

	var e int32

	if x&maskFFFF0000 != 0 {
		if x&maskFF000000 != 0 {
			e = 24 + logTable[(x>>24)&0xFF]
		} else {
			e = 16 + logTable[(x>>16)&0xFF]
		}
	} else {
		if x&mask0000FF00 != 0 {
			e = 8 + logTable[(x>>8)&0xFF]
		} else {
			e = logTable[x&0xFF]
		}
	}

	if e < 8 {
		return sqqTable[x] >> 4
	}

	var y int32

	if e >= 16 {
		y = sqqTable[x>>uint32((e-6)-(e&1))] << uint32((e>>1)-7)

		if e >= 24 {
			y = (y + 1 + x/y) >> 1
		}

		y = (y + 1 + x/y) >> 1
	} else {
		y = (sqqTable[x>>uint32((e-6)-(e&1))] >> uint32(7-(e>>1))) + 1
	}

	if x < y*y {
		return y - 1
	}

	return y
}
