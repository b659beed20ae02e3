// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// shreduce-coord is the rendezvous process a shreduce job's PEs dial at
// startup: it hands out consistent symmetric-buffer handles and the full
// peer address table, the same role pgas/local.Registry plays in-process,
// played here over the network for cmd/shreduce-peer.
package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/xtaci/shreduce/pgas/netfabric"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "shreduce-coord"
	myApp.Usage = "rendezvous coordinator for a shreduce job"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "listen,l",
			Value: ":29970",
			Usage: "address to accept PE connections on",
		},
		cli.IntFlag{
			Name:  "numpes,n",
			Value: 0,
			Usage: "number of PEs in the job (required)",
		},
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "",
			Usage: "config from json file, which will override the command from shell",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		config := Config{}
		config.Listen = c.String("listen")
		config.NumPEs = c.Int("numpes")
		config.Log = c.String("log")

		if c.String("c") != "" {
			checkError(parseJSONConfig(&config, c.String("c")))
		}

		if config.NumPEs <= 0 {
			checkError(fmt.Errorf("numpes must be > 0, got %d", config.NumPEs))
		}

		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			checkError(err)
			defer f.Close()
			log.SetOutput(f)
		}

		ln, err := net.Listen("tcp", config.Listen)
		checkError(err)

		log.Println("version:", VERSION)
		log.Println(color.GreenString("listening on:"), ln.Addr())
		log.Println("numpes:", config.NumPEs)

		coord := netfabric.NewCoordinator(config.NumPEs)
		return coord.Serve(ln)
	}
	myApp.Run(os.Args)
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
