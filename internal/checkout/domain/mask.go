// 生成摘要：输入框掩码格式化，逐字符过滤数字并按目标格式分组。
// 允许不完整输入，用于前端边输入边格式化。
package domain

import "strings"

// digitsOnly 过滤出字符串里的数字，最多保留 max 位
func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == max {
				break
			}
		}
	}
	return b.String()
}

// MaskCPF 格式化为 DDD.DDD.DDD-DD
func MaskCPF(s string) string {
	d := digitsOnly(s, 11)
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskPhone 格式化为 (DD) DDDDD-DDDD，8 位本地号时为 (DD) DDDD-DDDD
func MaskPhone(s string) string {
	d := digitsOnly(s, 11)
	if d == "" {
		return ""
	}
	var b strings.Builder
	b.WriteByte('(')
	if len(d) <= 2 {
		b.WriteString(d)
		return b.String()
	}
	b.WriteString(d[:2])
	b.WriteString(") ")
	rest := d[2:]
	// 9 位本地号前 5 位一组，8 位前 4 位一组
	split := 4
	if len(rest) > 8 {
		split = 5
	}
	if len(rest) <= split {
		b.WriteString(rest)
		return b.String()
	}
	b.WriteString(rest[:split])
	b.WriteByte('-')
	b.WriteString(rest[split:])
	return b.String()
}

// MaskCEP 格式化为 DDDDD-DDD
func MaskCEP(s string) string {
	d := digitsOnly(s, 8)
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// MaskCardNumber 四位一组，空格分隔
func MaskCardNumber(s string) string {
	d := digitsOnly(s, 19)
	var b strings.Builder
	for i, r := range d {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskCardExpiry 格式化为 MM/YY
func MaskCardExpiry(s string) string {
	d := digitsOnly(s, 4)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}
