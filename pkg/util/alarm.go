package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/evmlabs/walletd/internal/constant"
)

var (
	prefix, hooksUrl = "", ""
	m                = NewRWMap()
	client           = &http.Client{Timeout: constant.HttpTimeOut}
)

func Init(env, hooks string) {
	prefix = env
	hooksUrl = hooks
}

// Alarm posts msg to the monitor webhook. Repeats of the same message
// are suppressed for five minutes.
func Alarm(ctx context.Context, msg string) {
	if hooksUrl == "" {
		return
	}
	v, ok := m.Get(msg)
	if ok {
		if time.Now().Unix()-v < 300 { // ignore same alarm in five minute
			return
		}
	}

	m.Set(msg, time.Now().Unix())
	body, err := json.Marshal(map[string]interface{}{
		"text": fmt.Sprintf("%s %s", prefix, msg),
	})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, "POST", hooksUrl, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-type", "application/json")
	req.Header.Set("User-Agent", constant.Agent)

	resp, err := client.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warnln("read alarm resp failed:", err)
		return
	}
	log.Infoln("sent alarm message, resp:", string(data))
}
