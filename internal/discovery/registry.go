package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Registry 把实例信息心跳到 redis，供上层做服务发现
type Registry struct {
	client      *redis.Client
	serviceName string
	instanceID  string
	addr        string
	taskCount   func() int
	logger      *zap.Logger
	stopChan    chan struct{}
	once        sync.Once
}

type InstanceInfo struct {
	ID          string `json:"id"`
	Addr        string `json:"addr"`
	TaskCount   int    `json:"task_count"`
	LastUpdated int64  `json:"last_updated"`
}

// NewRegistry 创建注册器
// taskCount 汇报当前排队中的任务数，传 nil 则恒为 0。
func NewRegistry(redisAddr, serviceName, addr string, taskCount func() int, logger *zap.Logger) *Registry {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	hostname, _ := os.Hostname()
	instanceID := fmt.Sprintf("%s-%s", hostname, addr)

	if taskCount == nil {
		taskCount = func() int { return 0 }
	}

	return &Registry{
		client:      rdb,
		serviceName: serviceName,
		instanceID:  instanceID,
		addr:        addr,
		taskCount:   taskCount,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

func (r *Registry) Start() {
	go r.heartbeat()
}

func (r *Registry) Stop() {
	r.once.Do(func() {
		close(r.stopChan)
		r.client.Del(context.Background(), r.key())
	})
}

func (r *Registry) heartbeat() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	r.register()
	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.register()
		}
	}
}

func (r *Registry) register() {
	info := InstanceInfo{
		ID:          r.instanceID,
		Addr:        r.addr,
		TaskCount:   r.taskCount(),
		LastUpdated: time.Now().Unix(),
	}

	data, _ := json.Marshal(info)

	// 15 秒过期，心跳间隔 5 秒，丢两拍才会被判下线
	if err := r.client.Set(context.Background(), r.key(), data, 15*time.Second).Err(); err != nil {
		r.logger.Error("Failed to send heartbeat", zap.Error(err))
	}
}

func (r *Registry) key() string {
	return fmt.Sprintf("%s:instances:%s", r.serviceName, r.instanceID)
}
