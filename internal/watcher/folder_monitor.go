// Package watcher monitors a folder for incoming recognition result files
// and hands them to a processing handler once they settle.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/qc20/interview-transcriber/pkg/utils"
)

// FileEventHandler processes files the monitor considers ready.
type FileEventHandler interface {
	OnFileReady(filePath string)
}

// FileEventHandlerFunc adapts a plain function to the handler interface.
type FileEventHandlerFunc func(filePath string)

func (f FileEventHandlerFunc) OnFileReady(filePath string) { f(filePath) }

// FolderMonitor watches a folder for new or changed files with the target
// extensions. Events are debounced: the recognizer may still be writing the
// result file when the first event fires, so the handler only runs after the
// file has been quiet for the debounce window.
type FolderMonitor struct {
	watcher        *fsnotify.Watcher
	folderPath     string
	fileExtensions []string
	handler        FileEventHandler
	debounceTime   time.Duration
	pendingFiles   map[string]*time.Timer
	mutex          sync.Mutex
	stopChan       chan struct{}
}

// NewFolderMonitor creates a monitor for the given folder and extensions.
func NewFolderMonitor(folderPath string, extensions []string, handler FileEventHandler, debounceTime time.Duration) (*FolderMonitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FolderMonitor{
		watcher:        watcher,
		folderPath:     folderPath,
		fileExtensions: extensions,
		handler:        handler,
		debounceTime:   debounceTime,
		pendingFiles:   make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start begins watching the folder.
func (m *FolderMonitor) Start() error {
	if err := os.MkdirAll(m.folderPath, 0755); err != nil {
		return fmt.Errorf("failed to create watched folder: %w", err)
	}

	if err := m.watcher.Add(m.folderPath); err != nil {
		return fmt.Errorf("failed to watch folder: %w", err)
	}

	go m.watchLoop()

	utils.Info("watching folder: %s", m.folderPath)
	return nil
}

// Stop shuts the monitor down and cancels pending timers.
func (m *FolderMonitor) Stop() {
	close(m.stopChan)
	m.watcher.Close()
	utils.Info("stopped watching folder: %s", m.folderPath)

	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, timer := range m.pendingFiles {
		timer.Stop()
	}
}

func (m *FolderMonitor) watchLoop() {
	for {
		select {
		case <-m.stopChan:
			return
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			m.handleFileEvent(event)
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			utils.Error("error while watching folder: %v", err)
		}
	}
}

func (m *FolderMonitor) handleFileEvent(event fsnotify.Event) {
	// Only create and write events matter.
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	filePath := event.Name
	if !m.isTargetFile(filePath) {
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Restart the debounce window on every event for the file.
	if timer, exists := m.pendingFiles[filePath]; exists {
		timer.Stop()
	}

	m.pendingFiles[filePath] = time.AfterFunc(m.debounceTime, func() {
		m.processFile(filePath)
	})

	utils.Debug("file change detected: %s", filePath)
}

func (m *FolderMonitor) isTargetFile(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil || fileInfo.IsDir() {
		return false
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	for _, targetExt := range m.fileExtensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}

func (m *FolderMonitor) processFile(filePath string) {
	m.mutex.Lock()
	delete(m.pendingFiles, filePath)
	m.mutex.Unlock()

	// The file may have been removed during the debounce window.
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return
	}

	utils.Info("ready to process: %s", filePath)
	if m.handler != nil {
		m.handler.OnFileReady(filePath)
	}
}
