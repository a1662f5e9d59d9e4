package logger

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
)

const (
	defaultDataDogQueueSize = 1024
	defaultDataDogTimeout   = 5 * time.Second
	dataDogSource           = "zerolog"
)

// SubmitFunc delivers one encoded log line.
type SubmitFunc func(ctx context.Context, line []byte) error

// DataDogWriter ships log lines to the datadog logs intake.
// Writes never block: lines are queued and dropped once the queue is full.
type DataDogWriter struct {
	submit  SubmitFunc
	timeout time.Duration
	queue   chan []byte
	done    chan struct{}
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
}

// NewDataDogWriter creates a writer submitting through the datadog v2 logs API.
func NewDataDogWriter(cfg Log) (*DataDogWriter, error) {
	if cfg.DataDog.APIKey == "" {
		return nil, ErrDataDogAPIKeyIsEmpty
	}

	service := cfg.DataDog.ServiceName
	if service == "" {
		service = cfg.ServiceName
	}

	hostname, _ := os.Hostname()

	apiKeys := map[string]datadog.APIKey{"apiKeyAuth": {Key: cfg.DataDog.APIKey}}
	serverVariables := map[string]string{}

	if cfg.DataDog.Site != "" {
		serverVariables["site"] = cfg.DataDog.Site
	}

	api := datadogV2.NewLogsApi(datadog.NewAPIClient(datadog.NewConfiguration()))

	submit := func(reqCtx context.Context, line []byte) error {
		item := datadogV2.HTTPLogItem{
			Ddsource: datadog.PtrString(dataDogSource),
			Hostname: datadog.PtrString(hostname),
			Service:  datadog.PtrString(service),
			Message:  strings.TrimSpace(string(line)),
		}

		if cfg.DataDog.Tags != "" {
			item.Ddtags = datadog.PtrString(cfg.DataDog.Tags)
		}

		reqCtx = context.WithValue(reqCtx, datadog.ContextAPIKeys, apiKeys)
		reqCtx = context.WithValue(reqCtx, datadog.ContextServerVariables, serverVariables)

		_, _, err := api.SubmitLog(reqCtx, []datadogV2.HTTPLogItem{item}, *datadogV2.NewSubmitLogOptionalParameters())

		return err //nolint:wrapcheck
	}

	return NewDataDogWriterWithSubmit(submit, cfg.DataDog.QueueSize, cfg.DataDog.Timeout), nil
}

// NewDataDogWriterWithSubmit creates a writer around a custom submit function.
func NewDataDogWriterWithSubmit(submit SubmitFunc, queueSize int, timeout time.Duration) *DataDogWriter {
	if queueSize <= 0 {
		queueSize = defaultDataDogQueueSize
	}

	if timeout <= 0 {
		timeout = defaultDataDogTimeout
	}

	w := &DataDogWriter{
		submit:  submit,
		timeout: timeout,
		queue:   make(chan []byte, queueSize),
		done:    make(chan struct{}),
	}

	go w.run()

	return w
}

// Write queues a copy of p.
func (w *DataDogWriter) Write(p []byte) (int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return len(p), nil
	}

	line := make([]byte, len(p))
	copy(line, p)

	select {
	case w.queue <- line:
	default:
		// queue full, drop the line
	}

	return len(p), nil
}

// Close drains the queue and stops the sender goroutine.
func (w *DataDogWriter) Close() error {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		close(w.queue)
		w.mu.Unlock()
	})

	<-w.done

	return nil
}

func (w *DataDogWriter) run() {
	defer close(w.done)

	for line := range w.queue {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)

		if err := w.submit(ctx, line); err != nil {
			ErrorHandler(err)
		}

		cancel()
	}
}
