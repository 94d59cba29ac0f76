package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// BenchmarkResult 엔진별 벤치마크 결과
type BenchmarkResult struct {
	Engine       string        `json:"engine"`
	DataSize     int           `json:"data_size"`
	WriteTime    time.Duration `json:"write_time"`
	DBSize       int64         `json:"db_size_bytes"`
	ReadTime     time.Duration `json:"read_time"`
	SeqSortTime  time.Duration `json:"seq_sort_time"`
	PrlSortTime  time.Duration `json:"prl_sort_time"`
	KnapsackTime time.Duration `json:"knapsack_time"`
}

// generateRandomData 랜덤 데이터 생성
// 고정 시드 사용으로 재현 가능한 벤치마크
func generateRandomData(size int) []int {
	rnd := rand.New(rand.NewSource(42))

	data := make([]int, size)
	for i := range data {
		data[i] = rnd.Intn(1000000)
	}
	return data
}

// deriveItems 데이터 앞부분에서 배낭 아이템 파생 (무게/가치 모두 양수)
func deriveItems(data []int, count int) []benchItem {
	if count > len(data) {
		count = len(data)
	}

	items := make([]benchItem, count)
	for i := 0; i < count; i++ {
		items[i] = benchItem{
			weight: data[i]%50 + 1,
			value:  data[i]%100 + 1,
		}
	}
	return items
}

// getDirSize 디렉토리 전체 크기 계산
func getDirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

// saveResultsToMarkdown 마크다운 결과 저장
func saveResultsToMarkdown(results []BenchmarkResult) error {
	file, err := os.Create("benchmark_results.md")
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	defer writer.Flush()

	var builder strings.Builder
	builder.Grow(16 * 1024)

	builder.WriteString("# KV 저장소 + 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0)))

	builder.WriteString("| 엔진 | 데이터 | 쓰기 | 저장 공간 | 읽기 | 순차 머지소트 | 병렬 머지소트 | 배낭 풀이 |\n")
	builder.WriteString("|------|--------|------|-----------|------|----------------|----------------|------------|\n")

	for _, result := range results {
		builder.WriteString(fmt.Sprintf("| %s | %d | %v | %.2f MB | %v | %v | %v | %v |\n",
			result.Engine, result.DataSize,
			result.WriteTime.Round(time.Millisecond),
			float64(result.DBSize)/1024/1024,
			result.ReadTime.Round(time.Millisecond),
			result.SeqSortTime.Round(time.Millisecond),
			result.PrlSortTime.Round(time.Millisecond),
			result.KnapsackTime.Round(time.Millisecond)))
	}
	builder.WriteString("\n")

	_, err = writer.WriteString(builder.String())
	return err
}

// saveResultsToJSON JSON 결과 저장
func saveResultsToJSON(results []BenchmarkResult) error {
	file, err := os.Create("benchmark_results.json")
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	defer writer.Flush()

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
