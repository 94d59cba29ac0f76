package main

// mergeSortSeq 순차 머지소트 (새 슬라이스 반환)
func mergeSortSeq(arr []int) []int {
	if len(arr) <= 1 {
		return arr
	}

	// 작은 배열은 삽입정렬 사용
	if len(arr) <= 16 {
		result := make([]int, len(arr))
		copy(result, arr)
		insertionSort(result, 0, len(result)-1)
		return result
	}

	mid := len(arr) / 2
	left := mergeSortSeq(arr[:mid])
	right := mergeSortSeq(arr[mid:])

	return mergeRuns(left, right)
}

// mergeRuns 정렬된 두 런 병합
func mergeRuns(left, right []int) []int {
	result := make([]int, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}

	// 남은 요소들 한 번에 추가
	if i < len(left) {
		result = append(result, left[i:]...)
	}
	if j < len(right) {
		result = append(result, right[j:]...)
	}

	return result
}

// insertionSort 작은 배열 최적화
func insertionSort(arr []int, low, high int) {
	for i := low + 1; i <= high; i++ {
		key := arr[i]
		j := i - 1

		for j >= low && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}

// benchItem 배낭 벤치마크용 무게/가치 쌍
type benchItem struct {
	weight int
	value  int
}

// maxKnapsackValue 상향식 0/1 배낭, 최적 가치만 반환
// 안 들어가는 구간에서도 윗줄 값을 명시적으로 유지
func maxKnapsackValue(items []benchItem, capacity int) int {
	dp := make([][]int, len(items)+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}

	for i := 1; i <= len(items); i++ {
		currentItem := items[i-1]

		for j := 1; j <= capacity; j++ {
			if currentItem.weight > j {
				dp[i][j] = dp[i-1][j]
				continue
			}

			takeItem := currentItem.value + dp[i-1][j-currentItem.weight]
			if takeItem > dp[i-1][j] {
				dp[i][j] = takeItem
			} else {
				dp[i][j] = dp[i-1][j]
			}
		}
	}

	return dp[len(items)][capacity]
}
