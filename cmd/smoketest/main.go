package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// 对着跑起来的实例过一遍典型场景，肉眼检查输出。
// 不依赖翻译服务：只打 classify 和 execute。

var baseURL = flag.String("addr", "http://localhost:8090", "converter server address")

func main() {
	flag.Parse()

	classify("Python snippet", "def f(n):\n    return n")
	classify("C++ snippet", "#include <iostream>\nint main(){return 0;}")
	classify("Gibberish", "1 + 2")

	execute("Python OK", "python", "print(sum(range(10)))")
	execute("Python runtime error", "python", "print(1/0)")
	execute("Java without public class", "java", "class lowercase {}")
	execute("C++ compile error", "cpp", "int main() { broken }")
	execute("C++ OK", "cpp", "#include <iostream>\nint main(){ std::cout << 42 << std::endl; return 0; }")
	execute("JavaScript OK", "javascript", "console.log(2 + 2);")
}

func classify(name, code string) {
	var resp struct {
		Language string `json:"language"`
		Display  string `json:"display"`
	}
	post("/api/classify", map[string]any{"code": code}, &resp)
	fmt.Printf("=== %s ===\ndetected: %s (%s)\n\n", name, resp.Language, resp.Display)
}

func execute(name, lang, code string) {
	var resp struct {
		Outcome struct {
			Status    string `json:"status"`
			Succeeded bool   `json:"succeeded"`
		} `json:"outcome"`
		Report string `json:"report"`
	}
	post("/api/execute", map[string]any{"code": code, "language": lang}, &resp)
	fmt.Printf("=== %s ===\nstatus: %s succeeded: %v\n%s\n\n", name, resp.Outcome.Status, resp.Outcome.Succeeded, resp.Report)
}

func post(path string, payload any, out any) {
	body, _ := json.Marshal(payload)
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Post(*baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("POST %s: status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("POST %s: decode: %v", path, err)
	}
}
