package main

import (
	"encoding/binary"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestMergeSortSeq_AgreesWithStdlib(t *testing.T) {
	data := generateRandomData(5000)

	want := make([]int, len(data))
	copy(want, data)
	sort.Ints(want)

	assert.Equal(t, want, mergeSortSeq(data))
}

func TestParallelMergeSort_AgreesWithSequential(t *testing.T) {
	data := generateRandomData(50_000)

	seq := mergeSortSeq(data)
	prl := parallelMergeSort(data)

	assert.Equal(t, seq, prl)
}

func TestMaxKnapsackValue(t *testing.T) {
	// 기준 케이스: 무게 2짜리 두 개를 담는 게 최적
	items := []benchItem{{3, 5}, {2, 3}, {2, 3}}
	assert.Equal(t, 6, maxKnapsackValue(items, 4))

	// 안 들어가는 아이템 구간에서도 윗줄 값 유지
	assert.Equal(t, 4, maxKnapsackValue([]benchItem{{1, 4}, {10, 100}}, 5))

	assert.Equal(t, 0, maxKnapsackValue(nil, 4))
	assert.Equal(t, 0, maxKnapsackValue(items, 0))
}

func TestDeriveItems(t *testing.T) {
	data := generateRandomData(100)

	items := deriveItems(data, 200)

	require.Len(t, items, 100)
	for i, it := range items {
		assert.Positive(t, it.weight, "i=%d", i)
		assert.Positive(t, it.value, "i=%d", i)
		assert.LessOrEqual(t, it.weight, 50, "i=%d", i)
	}
}

func TestBboltRoundTrip(t *testing.T) {
	data := generateRandomData(500)
	dbFile := filepath.Join(t.TempDir(), "roundtrip.db")

	db, err := bbolt.Open(dbFile, 0600, nil)
	require.NoError(t, err)

	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		for i, v := range data {
			key, val := encodeEntry(i, v)
			if err := b.Put(key, val); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = bbolt.Open(dbFile, 0600, &bbolt.Options{ReadOnly: true})
	require.NoError(t, err)
	defer db.Close()

	loaded := make([]int, 0, len(data))
	err = db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketName)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			loaded = append(loaded, int(binary.BigEndian.Uint64(v)))
		}
		return nil
	})
	require.NoError(t, err)

	// 키가 빅엔디안 인덱스이므로 스캔 순서 = 삽입 순서
	assert.Equal(t, data, loaded)
}
