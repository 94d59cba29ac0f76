package main

import "fmt"

// W = 4 (kg)
// w = 3 | 2 | 2  (kg)
// v = 5 | 3 | 3  (ron)

// item 무게/가치 쌍
type item struct {
	weight int
	value  int
}

// solveKnapsack 상향식 타뷸레이션 0/1 배낭
// dp[i][j] = 앞쪽 i개 아이템, 무게 한도 j에서의 최대 가치
// 반환된 테이블은 (n+1) x (capacity+1), 0행/0열은 항상 0
func solveKnapsack(items []item, capacity int) ([][]int, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("잘못된 용량: %d", capacity)
	}
	for idx, it := range items {
		if it.weight < 0 || it.value < 0 {
			return nil, fmt.Errorf("잘못된 아이템 %d: 무게 %d, 가치 %d", idx, it.weight, it.value)
		}
	}

	dp := make([][]int, len(items)+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}

	for i := 1; i <= len(items); i++ {
		currentItem := items[i-1]

		for j := 1; j <= capacity; j++ {
			// 아이템이 한도를 초과하면 윗줄 값 그대로 유지
			if currentItem.weight > j {
				dp[i][j] = dp[i-1][j]
				continue
			}

			// 아이템을 넣는 편이 나은지 비교
			takeItem := currentItem.value + dp[i-1][j-currentItem.weight]
			if takeItem > dp[i-1][j] {
				dp[i][j] = takeItem
			} else {
				dp[i][j] = dp[i-1][j]
			}
		}
	}

	return dp, nil
}
