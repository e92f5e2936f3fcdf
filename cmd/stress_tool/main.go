package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/pool"
)

var httpClient *http.Client

func init() {
	// 优化 HTTP Client 配置
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 2000
	t.MaxIdleConnsPerHost = 2000
	t.MaxConnsPerHost = 2000
	httpClient = &http.Client{
		Transport: t,
		Timeout:   10 * time.Second,
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8080", "server base URL")
		users      = flag.Int("users", 1000, "distinct users liking the post")
		duplicates = flag.Int("dup", 10, "concurrent like attempts per user")
		workers    = flag.Int("workers", 200, "max concurrent requests")
	)
	flag.Parse()

	// 1. 创建帖子
	postID := createPost(*baseURL)
	total := *users * *duplicates
	fmt.Printf("开始压测：%d 个用户各并发点赞 %d 次 (PostID: %s)...\n", *users, *duplicates, postID)

	// 2. 并发点赞，同一用户的重复请求只应成功一次
	var success, conflict, failed atomic.Int64
	p := pool.New().WithMaxGoroutines(*workers)
	start := time.Now()
	for u := 0; u < *users; u++ {
		user := fmt.Sprintf("stress-%d", u)
		for d := 0; d < *duplicates; d++ {
			p.Go(func() {
				switch likePost(*baseURL, postID, user) {
				case http.StatusOK:
					success.Add(1)
				case http.StatusConflict:
					conflict.Add(1)
				default:
					failed.Add(1)
				}
			})
		}
	}
	p.Wait()
	duration := time.Since(start)

	// 3. 校验计数器和排行榜
	likeCount := fetchLikeCount(*baseURL, postID)

	fmt.Println("--------------------------------------------------")
	fmt.Printf("压测结束，耗时: %v\n", duration)
	fmt.Printf("总请求数: %d\n", total)
	fmt.Printf("QPS: %.2f\n", float64(total)/duration.Seconds())
	fmt.Printf("点赞成功: %d (预期: %d)\n", success.Load(), *users)
	fmt.Printf("重复点赞: %d (预期: %d)\n", conflict.Load(), total-*users)
	fmt.Printf("请求失败: %d\n", failed.Load())
	fmt.Printf("帖子点赞数: %d (预期: %d)\n", likeCount, success.Load())
	fmt.Println("--------------------------------------------------")

	if success.Load() != int64(*users) || likeCount != success.Load() {
		log.Fatal("like ledger inconsistent")
	}
}

func call(method, url string, payload interface{}) (int, envelope, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, envelope{}, err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, envelope{}, err
	}
	return resp.StatusCode, env, nil
}

func createPost(baseURL string) string {
	status, env, err := call(http.MethodPost, baseURL+"/api/posts", map[string]string{
		"author":  "stress-author",
		"content": "压测专用帖子 " + time.Now().Format(time.RFC3339),
	})
	if err != nil || status != http.StatusOK {
		log.Fatalf("创建帖子失败: status=%d err=%v", status, err)
	}

	var post struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &post); err != nil {
		log.Fatalf("解析响应失败: %v", err)
	}
	return post.ID
}

func likePost(baseURL, postID, user string) int {
	status, _, err := call(http.MethodPost, fmt.Sprintf("%s/api/posts/%s/like", baseURL, postID), map[string]string{"user": user})
	if err != nil {
		return 0
	}
	return status
}

func fetchLikeCount(baseURL, postID string) int64 {
	_, env, err := call(http.MethodGet, fmt.Sprintf("%s/api/posts/%s", baseURL, postID), nil)
	if err != nil {
		log.Fatalf("查询帖子失败: %v", err)
	}
	var post struct {
		LikeCount int64 `json:"likeCount"`
	}
	if err := json.Unmarshal(env.Data, &post); err != nil {
		log.Fatalf("解析响应失败: %v", err)
	}
	return post.LikeCount
}
