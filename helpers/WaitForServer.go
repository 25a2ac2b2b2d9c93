package helpers

import (
	"net/http"
	"time"
)

// WaitForServer polls the health endpoint until the server answers, or gives
// up after about five seconds.
func WaitForServer(baseURL string) {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}
}
