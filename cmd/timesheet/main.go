package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/irismonapark/Time-Sheet-Converter/internal/config"
	"github.com/irismonapark/Time-Sheet-Converter/internal/server"
	"github.com/irismonapark/Time-Sheet-Converter/internal/util"
)

var (
	port    = flag.Int("port", 0, "서비스 포트 (config.toml 우선. port 미지정 시에만 적용)")
	devMode = flag.Bool("dev", false, "개발 모드")
	dataDir = flag.String("dataDir", "", "데이터 디렉터리 (설정 파일 덮어쓰기)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Time-Sheet-Converter - 근태표 변환 도구")
	fmt.Println("==========================================")

	// 설정 로드
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("설정 로드 실패, 기본 설정을 사용합니다: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 명령행 인자 덮어쓰기
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 데이터 디렉터리 준비
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("데이터 디렉터리 생성 실패: %v", err)
	} else {
		fmt.Printf("데이터 디렉터리: %s\n", dir)
	}

	// 서버 생성
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 서버 시작
	go func() {
		fmt.Printf("서비스 시작, 포트 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("서비스 시작 실패: %v", err)
		}
	}()

	// 브라우저 열기
	if !cfg.Server.DevMode {
		fmt.Printf("브라우저를 엽니다: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("브라우저를 자동으로 열지 못했습니다. 직접 접속해 주세요: %s\n", url)
		}
	} else {
		fmt.Printf("개발 모드: %s 로 접속해 주세요\n", url)
	}

	fmt.Println("\nCtrl+C 로 종료합니다...")

	// 종료 신호 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n서비스를 종료합니다...")
	if err := srv.Close(); err != nil {
		log.Printf("종료 중 저장소 정리 실패: %v", err)
	}
}
