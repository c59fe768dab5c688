package ds1302

// decode converts packed BCD to an integer.
func decode(bcd uint8) int {
	return int(bcd>>4)*10 + int(bcd&0x0F)
}

// encode converts 0..99 to packed BCD.
func encode(dec int) uint8 {
	return uint8(dec/10)<<4 | uint8(dec%10)
}
