package main

import (
	"bytes"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/bytekit"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	// 4 MiB artifact with a marker planted every 4 KiB.
	artifact := bytes.Repeat([]byte{0x90}, 4<<20)
	for off := 0; off < len(artifact); off += 4096 {
		copy(artifact[off:], "/system/bin/sh\x00")
	}
	from := bytekit.ViewString("/system/bin/sh\x00")
	to := bytekit.ViewString("/dev/null\x00\x00\x00\x00\x00\x00")

	for i := 0; i < 10000; i++ {
		buf := bytekit.View(artifact).Clone()
		offs := buf.Patch(from, to)
		if len(offs) == 0 {
			log.Fatal("no patch locations found")
		}
		buf.Free()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
