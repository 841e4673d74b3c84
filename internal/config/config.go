package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 애플리케이션 설정
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Payroll PayrollConfig `toml:"payroll"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 데이터 디렉터리 설정
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// PayrollConfig 명세서 관련 설정
type PayrollConfig struct {
	DefaultCompany string `toml:"default_company"` // 회사명 추론 실패 시 표시명
}

// LoadConfigInfo 설정 로드 부가 정보
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20422,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Payroll: PayrollConfig{
			DefaultCompany: "미지정",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 실행 파일이 있는 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 실행 파일 옆 config.toml 로드 + 부가 정보
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 설정 파일이 없으면 기본 설정 사용
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	// 환경 변수 덮어쓰기 (E2E / 로컬 실행용)
	if v := os.Getenv("TIMESHEET_DEFAULT_COMPANY"); v != "" {
		config.Payroll.DefaultCompany = v
	}

	return config, info, nil
}

// LoadConfig 실행 파일 옆 config.toml 로드
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig config.toml 저장
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 데이터 디렉터리와 하위 디렉터리 준비
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// GetDataPath 데이터 파일 경로
func GetDataPath(config *AppConfig, subdir, filename string) string {
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir, subdir, filename)
}
