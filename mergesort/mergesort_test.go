package main

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortRange_FixedVector(t *testing.T) {
	arr := []int{38, 27, 43, 3, 9, 82, 10}

	err := sortRange(arr, 0, len(arr)-1, nil)

	require.NoError(t, err)
	assert.Equal(t, []int{3, 9, 10, 27, 38, 43, 82}, arr)
}

func TestSortRange_TraceOrder(t *testing.T) {
	arr := []int{38, 27, 43, 3, 9, 82, 10}
	var traced [][]int

	err := sortRange(arr, 0, len(arr)-1, func(sub []int) {
		snapshot := make([]int, len(sub))
		copy(snapshot, sub)
		traced = append(traced, snapshot)
	})

	require.NoError(t, err)
	// 분할 직전의 부분 배열: 7 -> 4 -> 2 -> 2 -> 3 -> 2 순서
	require.Len(t, traced, 6)
	assert.Equal(t, []int{38, 27, 43, 3, 9, 82, 10}, traced[0])
	assert.Equal(t, []int{38, 27, 43, 3}, traced[1])
	assert.Equal(t, []int{38, 27}, traced[2])
	assert.Equal(t, []int{43, 3}, traced[3])
	assert.Equal(t, []int{9, 82, 10}, traced[4])
	assert.Equal(t, []int{9, 82}, traced[5])
}

func TestSortRange_Properties(t *testing.T) {
	// 고정 시드 사용으로 재현 가능한 입력
	rnd := rand.New(rand.NewSource(42))

	for _, size := range []int{2, 7, 100, 1000} {
		arr := make([]int, size)
		for i := range arr {
			arr[i] = rnd.Intn(1000) - 500
		}

		want := make([]int, size)
		copy(want, arr)
		sort.Ints(want)

		require.NoError(t, sortRange(arr, 0, size-1, nil))
		// 오름차순 + 멀티셋 보존
		assert.Equal(t, want, arr, "size=%d", size)

		// 멱등성
		again := make([]int, size)
		copy(again, arr)
		require.NoError(t, sortRange(again, 0, size-1, nil))
		assert.Equal(t, arr, again, "size=%d", size)
	}
}

func TestSortRange_TrivialRanges(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		arr := []int{}
		traced := 0

		err := sortRange(arr, 0, len(arr)-1, func([]int) { traced++ })

		require.NoError(t, err)
		assert.Zero(t, traced)
	})

	t.Run("single element", func(t *testing.T) {
		arr := []int{7}
		traced := 0

		err := sortRange(arr, 0, 0, func([]int) { traced++ })

		require.NoError(t, err)
		assert.Equal(t, []int{7}, arr)
		assert.Zero(t, traced)
	})

	t.Run("subrange only", func(t *testing.T) {
		arr := []int{9, 5, 3, 1, 0}

		require.NoError(t, sortRange(arr, 1, 3, nil))
		// 구간 밖은 건드리지 않음
		assert.Equal(t, []int{9, 1, 3, 5, 0}, arr)
	})
}

func TestSortRange_InvalidRange(t *testing.T) {
	arr := []int{3, 1, 2}

	assert.Error(t, sortRange(arr, -1, 2, nil))
	assert.Error(t, sortRange(arr, 0, 3, nil))
	assert.Error(t, sortRange(arr, 3, 1, nil))
}

func TestMergeRuns(t *testing.T) {
	t.Run("reference runs", func(t *testing.T) {
		arr := []int{3, 27, 38, 43, 9, 10, 82}

		mergeRuns(arr, 0, 3, 6)

		assert.Equal(t, []int{3, 9, 10, 27, 38, 43, 82}, arr)
	})

	t.Run("tie takes right run first", func(t *testing.T) {
		arr := []int{5, 5, 5}

		mergeRuns(arr, 0, 0, 2)

		assert.Equal(t, []int{5, 5, 5}, arr)
	})

	t.Run("one run exhausted early", func(t *testing.T) {
		arr := []int{10, 20, 30, 1, 2}

		mergeRuns(arr, 0, 2, 4)

		assert.Equal(t, []int{1, 2, 10, 20, 30}, arr)
	})
}

func TestFormatArray(t *testing.T) {
	assert.Equal(t, "3 9 10 ", formatArray([]int{3, 9, 10}))
	assert.Equal(t, "", formatArray(nil))
}
