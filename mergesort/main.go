package main

import "log"

// [38, 27, 43, 3, 9, 82, 10]
//   0,  1,  2, 3, 4,  5,  6

func main() {
	array := []int{38, 27, 43, 3, 9, 82, 10}
	leftBound := 0
	rightBound := len(array) - 1

	// 재귀 진입마다 분할 대상 구간 출력
	if err := sortRange(array, leftBound, rightBound, printArray); err != nil {
		log.Fatalf("정렬 실패: %v", err)
	}

	// 최종 정렬 결과
	printArray(array)
}
