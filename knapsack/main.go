package main

import "log"

func main() {
	capacity := 4 // kg

	items := []item{
		{weight: 3, value: 5},
		{weight: 2, value: 3},
		{weight: 2, value: 3},
	}

	dp, err := solveKnapsack(items, capacity)
	if err != nil {
		log.Fatalf("배낭 풀이 실패: %v", err)
	}

	printTable(dp)
}
