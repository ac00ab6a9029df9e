package feedback

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/smokeless/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// ErrTrayNotRunning is returned when no live tray process owns the lockfile.
var ErrTrayNotRunning = errors.New(constants.TrayAppExecutable + " is not running")

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// trayLock is the "port|pid|secret" record the tray companion writes on start.
type trayLock struct {
	Port   int
	PID    int
	Secret string
}

func (l trayLock) endpoint() string {
	return "http://127.0.0.1:" + strconv.Itoa(l.Port)
}

// SendTray delivers text to the desktop tray companion, if one is running.
func SendTray(text string) error {
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	lock, err := readTrayLock(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	if err := verifyTrayProcess(lock.PID); err != nil {
		return err
	}

	return sendNotification(lock, WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

// GetTrayAppConfigDir returns the directory holding the tray lockfile.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	// settings.json may point the lockfile somewhere else
	data, err := os.ReadFile(filepath.Join(trayDir, "settings.json"))
	if err != nil {
		return trayDir, nil
	}
	var traySettings struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &traySettings) == nil {
		if dir := traySettings.Settings.LockfileDir; dir != nil && *dir != "" {
			return *dir, nil
		}
	}
	return trayDir, nil
}

func readTrayLock(path string) (trayLock, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return trayLock{}, ErrTrayNotRunning
	}
	return parseTrayLock(string(content))
}

func parseTrayLock(content string) (trayLock, error) {
	fields := strings.Split(strings.TrimSpace(content), "|")
	if len(fields) != 3 {
		return trayLock{}, errors.New("lockfile is malformed")
	}

	var lock trayLock
	if strings.TrimSpace(fields[0]) == "" {
		return lock, errors.New("port in lockfile is empty")
	}
	port, err := strconv.Atoi(fields[0])
	if err != nil {
		return lock, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return lock, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}
	pid, err := strconv.Atoi(fields[1])
	if err != nil {
		return lock, errors.New("invalid process ID in lockfile")
	}
	if strings.TrimSpace(fields[2]) == "" {
		return lock, errors.New("secret in lockfile is empty")
	}

	return trayLock{Port: port, PID: pid, Secret: fields[2]}, nil
}

// verifyTrayProcess guards against a stale lockfile whose PID was reused.
func verifyTrayProcess(pid int) error {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return ErrTrayNotRunning
	}
	if exe := process.Executable(); !strings.HasPrefix(exe, constants.TrayAppExecutable) {
		return fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayAppExecutable, exe)
	}
	return nil
}

func sendNotification(lock trayLock, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, lock.endpoint(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Smokeless-Secret", lock.Secret)

	client := &http.Client{Timeout: 3 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(msg))
	}
	return nil
}
