package util

import (
	"os/exec"
	"runtime"
)

// OpenBrowser 기본 브라우저 열기
// Windows 7/10/11, macOS, Linux 지원
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// Windows 7에서도 안정적으로 동작하는 rundll32 방식
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}

// OpenBrowserWithFallback 실패 시 대안 방식으로 재시도
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", url).Start()
	case "linux":
		browsers := []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}
		for _, browser := range browsers {
			if err := exec.Command(browser, url).Start(); err == nil {
				return nil
			}
		}
	}

	return err
}
