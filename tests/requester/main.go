package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8300/api"

var paths = []string{
	"/carts",
	"/orders",
	"/carts/1",
	"/orders/1",
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	path := paths[rand.Intn(len(paths))]
	if rand.Intn(5) == 0 {
		path = fmt.Sprintf("/orders/%d", rand.Intn(10000))
	}

	url := baseURL + path
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
