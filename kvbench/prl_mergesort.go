package main

import (
	"runtime"
	"sync"
)

// parallelMergeSort 워커 풀 기반 병렬 머지소트
func parallelMergeSort(arr []int) []int {
	initWorkerPool()
	return parallelMergeSortHelper(arr, runtime.NumCPU())
}

func parallelMergeSortHelper(arr []int, depth int) []int {
	if len(arr) <= 1 {
		return arr
	}

	if depth <= 1 || len(arr) < parallelThreshold(len(arr)) {
		return mergeSortSeq(arr)
	}

	mid := len(arr) / 2
	var left, right []int

	// 각 고루틴이 독립적으로 워커 풀 슬롯 관리
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		select {
		case workerPool <- struct{}{}:
			defer func() { <-workerPool }()
			left = parallelMergeSortHelper(arr[:mid], depth/2)
		default:
			// 슬롯 없으면 순차 처리
			left = mergeSortSeq(arr[:mid])
		}
	}()

	go func() {
		defer wg.Done()

		select {
		case workerPool <- struct{}{}:
			defer func() { <-workerPool }()
			right = parallelMergeSortHelper(arr[mid:], depth/2)
		default:
			// 슬롯 없으면 순차 처리
			right = mergeSortSeq(arr[mid:])
		}
	}()

	wg.Wait()
	return mergeRuns(left, right)
}

// parallelThreshold 병렬화 임계값 (작은 데이터는 병렬처리 안함)
func parallelThreshold(totalSize int) int {
	switch {
	case totalSize < 1000:
		return totalSize
	case totalSize < 10000:
		return 300
	case totalSize < 100000:
		return 800
	default:
		return 1500
	}
}
