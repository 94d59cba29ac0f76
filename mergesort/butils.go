package main

import (
	"fmt"
	"strconv"
	"strings"
)

// formatArray 공백 구분 렌더링 (마지막 요소 뒤에도 공백)
func formatArray(arr []int) string {
	var builder strings.Builder
	builder.Grow(len(arr) * 4)

	for _, num := range arr {
		builder.WriteString(strconv.Itoa(num))
		builder.WriteByte(' ')
	}

	return builder.String()
}

// printArray 한 줄 출력, 개행으로 종료
func printArray(arr []int) {
	fmt.Println(formatArray(arr))
}
