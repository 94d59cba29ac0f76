package main

import "fmt"

// traceFunc 분할 직전의 부분 배열을 관찰하는 훅.
// 정렬 로직과 디버그 출력을 분리하기 위한 콜백 (nil이면 추적 없음)
type traceFunc func(sub []int)

// sortRange 범위 검증 포함 진입점
// arr[leftBound..rightBound]를 제자리에서 오름차순 정렬
func sortRange(arr []int, leftBound, rightBound int, trace traceFunc) error {
	// 고정 입력에서는 도달 불가능하지만 재사용 시 가드 필요
	if leftBound < 0 || rightBound > len(arr)-1 || leftBound > rightBound+1 {
		return fmt.Errorf("잘못된 정렬 범위: [%d, %d] (길이 %d)", leftBound, rightBound, len(arr))
	}

	mergeSortRange(arr, leftBound, rightBound, trace)
	return nil
}

// mergeSortRange 재귀 분할 정복
// 기저 조건: 원소 0개 또는 1개 (leftBound >= rightBound)
func mergeSortRange(arr []int, leftBound, rightBound int, trace traceFunc) {
	if leftBound >= rightBound {
		return
	}

	// 분할 직전 부분 배열 추적
	if trace != nil {
		trace(arr[leftBound : rightBound+1])
	}

	// 분할
	mid := (leftBound + rightBound) / 2

	// 정복
	mergeSortRange(arr, leftBound, mid, trace)
	mergeSortRange(arr, mid+1, rightBound, trace)

	// 병합
	mergeRuns(arr, leftBound, mid, rightBound)
}

// mergeRuns 정렬된 두 구간 arr[leftBound..mid], arr[mid+1..rightBound] 병합
// 엄격한 < 비교: 같은 값은 오른쪽 구간에서 먼저 가져옴
func mergeRuns(arr []int, leftBound, mid, rightBound int) {
	merged := make([]int, 0, rightBound-leftBound+1)
	i, j := leftBound, mid+1

	for i <= mid && j <= rightBound {
		if arr[i] < arr[j] {
			merged = append(merged, arr[i])
			i++
		} else {
			merged = append(merged, arr[j])
			j++
		}
	}

	// 남은 요소들 한 번에 추가
	merged = append(merged, arr[i:mid+1]...)
	merged = append(merged, arr[j:rightBound+1]...)

	// 원본 배열로 복사
	copy(arr[leftBound:rightBound+1], merged)
}
