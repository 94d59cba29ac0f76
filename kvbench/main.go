package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v3"
	"go.etcd.io/bbolt"
)

const (
	numItems      = 200_000
	knapItemCount = 2_000 // 배낭 벤치마크에 사용할 아이템 개수
	knapCapacity  = 500
	keySize       = 8
	bboltDBFile   = "bbolt.db"
	badgerDir     = "badger"
	pebbleDir     = "pebble"
	bucketName    = "benchmark"
)

func main() {
	fmt.Println("KV 저장소 + 알고리즘 벤치마크 시작...")
	fmt.Printf("CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Printf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	// 워커 풀 초기화
	initWorkerPool()

	// --- 1. 데이터 생성 ---
	fmt.Printf("%d개의 테스트 데이터를 생성합니다...\n", numItems)
	data := generateRandomData(numItems)

	// --- 2. 벤치마크 실행 ---
	bboltResult, err := runBboltBenchmark(data)
	if err != nil {
		log.Fatalf("bbolt 실패: %v", err)
	}
	badgerResult, err := runBadgerBenchmark(data)
	if err != nil {
		log.Fatalf("BadgerDB 실패: %v", err)
	}
	pebbleResult, err := runPebbleBenchmark(data)
	if err != nil {
		log.Fatalf("PebbleDB 실패: %v", err)
	}

	// --- 3. 결과 출력 및 저장 ---
	results := []BenchmarkResult{bboltResult, badgerResult, pebbleResult}
	printResults(results)

	if err := saveResultsToMarkdown(results); err != nil {
		fmt.Printf("마크다운 저장 오류: %v\n", err)
	} else {
		fmt.Println("benchmark_results.md 파일이 생성되었습니다.")
	}

	if err := saveResultsToJSON(results); err != nil {
		fmt.Printf("JSON 저장 오류: %v\n", err)
	} else {
		fmt.Println("benchmark_results.json 파일이 생성되었습니다.")
	}

	fmt.Println("벤치마크 완료!")
}

// encodeEntry 인덱스를 키로, 값을 밸류로 8바이트 빅엔디안 인코딩
// 키가 사전순 = 숫자순이므로 스캔 순서가 삽입 순서와 일치
func encodeEntry(index int, value int) (key, val []byte) {
	key = make([]byte, keySize)
	binary.BigEndian.PutUint64(key, uint64(index))
	val = make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(value))
	return key, val
}

// measureCompute 읽어온 데이터로 정렬/배낭 시간 측정
func measureCompute(result *BenchmarkResult, data []int) {
	// 메모리 효율적인 데이터 복사
	testData := make([]int, len(data))

	copy(testData, data)
	start := time.Now()
	sorted := mergeSortSeq(testData)
	result.SeqSortTime = time.Since(start)
	copy(testData, sorted)

	copy(testData, data)
	start = time.Now()
	sorted = parallelMergeSort(testData)
	result.PrlSortTime = time.Since(start)
	copy(testData, sorted)

	items := deriveItems(data, knapItemCount)
	start = time.Now()
	best := maxKnapsackValue(items, knapCapacity)
	result.KnapsackTime = time.Since(start)
	_ = best
}

func runBboltBenchmark(data []int) (BenchmarkResult, error) {
	fmt.Println("\n--- bbolt 벤치마크 시작 ---")
	os.Remove(bboltDBFile)
	defer os.Remove(bboltDBFile)
	result := BenchmarkResult{Engine: "bbolt", DataSize: len(data)}

	start := time.Now()
	db, err := bbolt.Open(bboltDBFile, 0600, nil)
	if err != nil {
		return result, err
	}
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
	db.Close()
	if err != nil {
		return result, err
	}
	result.WriteTime = time.Since(start)

	fi, err := os.Stat(bboltDBFile)
	if err != nil {
		return result, err
	}
	result.DBSize = fi.Size()

	db, err = bbolt.Open(bboltDBFile, 0600, &bbolt.Options{ReadOnly: true})
	if err != nil {
		return result, err
	}
	defer db.Close()

	loaded := make([]int, 0, len(data))
	start = time.Now()
	err = db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketName)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			loaded = append(loaded, int(binary.BigEndian.Uint64(v)))
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	result.ReadTime = time.Since(start)

	if len(loaded) != len(data) {
		return result, fmt.Errorf("읽기 개수 불일치: %d != %d", len(loaded), len(data))
	}

	measureCompute(&result, loaded)
	return result, nil
}

func runBadgerBenchmark(data []int) (BenchmarkResult, error) {
	fmt.Println("\n--- BadgerDB 벤치마크 시작 ---")
	os.RemoveAll(badgerDir)
	defer os.RemoveAll(badgerDir)
	result := BenchmarkResult{Engine: "BadgerDB", DataSize: len(data)}
	opts := badger.DefaultOptions(badgerDir).WithLogger(nil)

	start := time.Now()
	db, err := badger.Open(opts)
	if err != nil {
		return result, err
	}
	wb := db.NewWriteBatch()
	for i, v := range data {
		key, val := encodeEntry(i, v)
		if err := wb.Set(key, val); err != nil {
			db.Close()
			return result, err
		}
	}
	if err := wb.Flush(); err != nil {
		db.Close()
		return result, err
	}
	db.Close()
	result.WriteTime = time.Since(start)

	result.DBSize, err = getDirSize(badgerDir)
	if err != nil {
		return result, err
	}

	db, err = badger.Open(opts.WithReadOnly(true))
	if err != nil {
		return result, err
	}
	defer db.Close()

	loaded := make([]int, 0, len(data))
	start = time.Now()
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			loaded = append(loaded, int(binary.BigEndian.Uint64(val)))
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	result.ReadTime = time.Since(start)

	if len(loaded) != len(data) {
		return result, fmt.Errorf("읽기 개수 불일치: %d != %d", len(loaded), len(data))
	}

	measureCompute(&result, loaded)
	return result, nil
}

func runPebbleBenchmark(data []int) (BenchmarkResult, error) {
	fmt.Println("\n--- PebbleDB 벤치마크 시작 ---")
	os.RemoveAll(pebbleDir)
	defer os.RemoveAll(pebbleDir)
	result := BenchmarkResult{Engine: "PebbleDB", DataSize: len(data)}

	start := time.Now()
	db, err := pebble.Open(pebbleDir, &pebble.Options{Logger: nil})
	if err != nil {
		return result, err
	}
	batch := db.NewBatch()
	for i, v := range data {
		key, val := encodeEntry(i, v)
		if err := batch.Set(key, val, pebble.NoSync); err != nil {
			db.Close()
			return result, err
		}
	}
	if err := batch.Commit(pebble.NoSync); err != nil {
		db.Close()
		return result, err
	}
	db.Close()
	result.WriteTime = time.Since(start)

	result.DBSize, err = getDirSize(pebbleDir)
	if err != nil {
		return result, err
	}

	db, err = pebble.Open(pebbleDir, &pebble.Options{ReadOnly: true, Logger: nil})
	if err != nil {
		return result, err
	}
	defer db.Close()

	loaded := make([]int, 0, len(data))
	start = time.Now()
	it, err := db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return result, err
	}
	for it.First(); it.Valid(); it.Next() {
		loaded = append(loaded, int(binary.BigEndian.Uint64(it.Value())))
	}
	it.Close()
	result.ReadTime = time.Since(start)

	if len(loaded) != len(data) {
		return result, fmt.Errorf("읽기 개수 불일치: %d != %d", len(loaded), len(data))
	}

	measureCompute(&result, loaded)
	return result, nil
}

func printResults(results []BenchmarkResult) {
	fmt.Println("\n\n--- 최종 벤치마크 결과 ---")
	fmt.Println("==================================================================================================================")
	fmt.Printf("%-32s | %-18s | %-18s | %-18s\n", "항목", results[0].Engine, results[1].Engine, results[2].Engine)
	fmt.Println("-------------------------------------- [1. 저장소 성능] ---------------------------------------------------------")
	fmt.Printf("%-32s | %-18v | %-18v | %-18v\n", fmt.Sprintf("쓰기 시간 (%d건)", numItems), results[0].WriteTime.Round(time.Millisecond), results[1].WriteTime.Round(time.Millisecond), results[2].WriteTime.Round(time.Millisecond))
	fmt.Printf("%-32s | %-18s | %-18s | %-18s\n", "저장 공간", fmt.Sprintf("%.2f MB", float64(results[0].DBSize)/1024/1024), fmt.Sprintf("%.2f MB", float64(results[1].DBSize)/1024/1024), fmt.Sprintf("%.2f MB", float64(results[2].DBSize)/1024/1024))
	fmt.Printf("%-32s | %-18v | %-18v | %-18v\n", "순차 읽기", results[0].ReadTime.Round(time.Millisecond), results[1].ReadTime.Round(time.Millisecond), results[2].ReadTime.Round(time.Millisecond))
	fmt.Println("-------------------------------------- [2. 알고리즘 성능] -------------------------------------------------------")
	fmt.Printf("%-32s | %-18v | %-18v | %-18v\n", "순차 머지소트", results[0].SeqSortTime.Round(time.Microsecond), results[1].SeqSortTime.Round(time.Microsecond), results[2].SeqSortTime.Round(time.Microsecond))
	fmt.Printf("%-32s | %-18v | %-18v | %-18v\n", "병렬 머지소트", results[0].PrlSortTime.Round(time.Microsecond), results[1].PrlSortTime.Round(time.Microsecond), results[2].PrlSortTime.Round(time.Microsecond))
	fmt.Printf("%-32s | %-18v | %-18v | %-18v\n", fmt.Sprintf("배낭 풀이 (%d개, 용량 %d)", knapItemCount, knapCapacity), results[0].KnapsackTime.Round(time.Microsecond), results[1].KnapsackTime.Round(time.Microsecond), results[2].KnapsackTime.Round(time.Microsecond))
	fmt.Println("==================================================================================================================")
}
