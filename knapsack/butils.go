package main

import (
	"fmt"
	"strconv"
	"strings"
)

// formatRow 공백 구분 렌더링 (마지막 요소 뒤에도 공백)
func formatRow(row []int) string {
	var builder strings.Builder
	builder.Grow(len(row) * 4)

	for _, num := range row {
		builder.WriteString(strconv.Itoa(num))
		builder.WriteByte(' ')
	}

	return builder.String()
}

// printTable 테이블을 행 단위로 출력
func printTable(dp [][]int) {
	for _, row := range dp {
		fmt.Println(formatRow(row))
	}
}
