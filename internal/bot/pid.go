package bot

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/asyncee/prophet-bot/internal/config"
)

func pidPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prophet-bot.pid"), nil
}

func WritePID() error {
	path, err := pidPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func RemovePID() {
	if path, err := pidPath(); err == nil {
		os.Remove(path)
	}
}

func ReadPID() (int, error) {
	path, err := pidPath()
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("no running bot found")
	}

	pid, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("invalid PID file")
	}

	return pid, nil
}
