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

// shreduce-peer is one PE of a shreduce job: it dials the coordinator,
// establishes the full-mesh netfabric session with every other PE, then
// runs one reduction over a demo vector and prints the result. It exists
// to exercise the public reduce API end to end over a real network
// transport, not as a general-purpose collective-compute driver.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/psync"
	"github.com/xtaci/shreduce/internal/stats"
	"github.com/xtaci/shreduce/pgas"
	"github.com/xtaci/shreduce/pgas/netfabric"
	"github.com/xtaci/shreduce/reduce"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "shreduce-peer"
	myApp.Usage = "one PE of a shreduce job"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{Name: "coordinator,C", Value: "127.0.0.1:29970", Usage: "shreduce-coord address"},
		cli.StringFlag{Name: "listen,l", Value: "127.0.0.1:0-0", Usage: `address this PE listens for peers on, eg "IP:port" or "IP:minport-maxport"`},
		cli.IntFlag{Name: "pe", Value: -1, Usage: "this PE's global id (required)"},
		cli.IntFlag{Name: "numpes,n", Value: 0, Usage: "number of PEs in the job (required)"},
		cli.StringFlag{Name: "key", Value: "it's a secrect", Usage: "pre-shared secret between PEs"},
		cli.StringFlag{Name: "crypt", Value: "aes-128", Usage: "aes-128, aes-192, aes-128-gcm, salsa20, blowfish, twofish, cast5, 3des, tea, xtea, xor, sm4, none, null"},
		cli.BoolFlag{Name: "nocomp", Usage: "disable snappy compression of RMA payloads"},
		cli.StringFlag{Name: "algo", Value: "linear", Usage: "linear, binomial, rec_dbl, rabenseifner"},
		cli.StringFlag{Name: "op", Value: "sum", Usage: "sum, prod, min, max, and, or, xor"},
		cli.IntFlag{Name: "nreduce", Value: 4, Usage: "vector width of the demo reduction"},
		cli.StringFlag{Name: "log", Value: "", Usage: "specify a log file to output, default goes to stderr"},
		cli.IntFlag{Name: "ds", Value: 10, Usage: "reed-solomon data shard count"},
		cli.IntFlag{Name: "ps", Value: 3, Usage: "reed-solomon parity shard count"},
		cli.StringFlag{Name: "snmplog", Value: "", Usage: "path to write periodic RMA traffic stats as CSV"},
		cli.IntFlag{Name: "snmpperiod", Value: 60, Usage: "seconds between snmplog writes"},
		cli.StringFlag{Name: "c", Value: "", Usage: "config from json file, which will override the command from shell"},
	}
	myApp.Action = func(c *cli.Context) error {
		config := Config{}
		config.Coordinator = c.String("coordinator")
		config.Listen = c.String("listen")
		config.PE = c.Int("pe")
		config.NumPEs = c.Int("numpes")
		config.Key = c.String("key")
		config.Crypt = c.String("crypt")
		config.NoComp = c.Bool("nocomp")
		config.Algo = c.String("algo")
		config.Op = c.String("op")
		config.NReduce = c.Int("nreduce")
		config.Log = c.String("log")
		config.DataShard = c.Int("ds")
		config.ParityShard = c.Int("ps")
		config.SnmpLog = c.String("snmplog")
		config.SnmpPeriod = c.Int("snmpperiod")

		if c.String("c") != "" {
			checkError(parseJSONConfig(&config, c.String("c")))
		}

		if config.PE < 0 || config.NumPEs <= 0 {
			checkError(fmt.Errorf("pe (>=0) and numpes (>0) are required"))
		}

		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			checkError(err)
			defer f.Close()
			log.SetOutput(f)
		}

		cfg := netfabric.DefaultConfig()
		cfg.Key = config.Key
		cfg.Cipher = config.Crypt
		cfg.Compress = !config.NoComp
		cfg.DataShard = config.DataShard
		cfg.ParityShard = config.ParityShard

		fab, err := netfabric.Dial(config.Coordinator, config.Listen, config.PE, config.NumPEs, cfg)
		checkError(err)

		if config.SnmpLog != "" {
			stop := make(chan struct{})
			defer close(stop)
			go stats.LogPeriodic(config.SnmpLog, config.SnmpPeriod, fab.Stats(), stop)
		}

		log.Println("version:", VERSION)
		log.Println(color.GreenString("PE %d of %d online", config.PE, config.NumPEs))

		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: config.NumPEs}

		source := make([]int32, config.NReduce)
		for i := range source {
			source[i] = int32(config.PE + i)
		}
		dest := make([]int32, config.NReduce)
		pWrk := make([]int32, config.NReduce)

		_, logP2s := as.P2SSize()
		pSyncLen, err := pSyncSizeFor(config.Algo, logP2s)
		checkError(err)
		pSync := make([]int64, pSyncLen)

		sourceBuf, err := pgas.NewSymBuf(fab, source)
		checkError(err)
		destBuf, err := pgas.NewSymBuf(fab, dest)
		checkError(err)
		pWrkBuf, err := pgas.NewSymBuf(fab, pWrk)
		checkError(err)
		pSyncBuf, err := pgas.NewSymBuf(fab, pSync)
		checkError(err)

		checkError(runReduction(config.Algo, config.Op, fab, as, destBuf, sourceBuf, config.NReduce, pWrkBuf, pSyncBuf))

		log.Printf("dest = %v", destBuf.Local)
		return nil
	}
	myApp.Run(os.Args)
}

func pSyncSizeFor(algo string, logP2s int) (int, error) {
	switch algo {
	case "linear":
		return psync.LinearSize(), nil
	case "binomial":
		return psync.BinomialSize(), nil
	case "rec_dbl":
		return psync.RecDblSize(logP2s), nil
	case "rabenseifner":
		return psync.RabenseifnerSize(logP2s), nil
	default:
		return 0, errors.Errorf("unknown algorithm %q", algo)
	}
}

func runReduction(algo, op string, fab pgas.Fabric, as activeset.Set, dest, source pgas.SymBuf[int32], nreduce int, pWrk pgas.SymBuf[int32], pSync pgas.SymBuf[int64]) error {
	switch algo + "/" + op {
	case "linear/sum":
		return reduce.Int32SumToAllLinear(fab, as, dest, source, nreduce, pWrk, pSync)
	case "linear/prod":
		return reduce.Int32ProdToAllLinear(fab, as, dest, source, nreduce, pWrk, pSync)
	case "linear/min":
		return reduce.Int32MinToAllLinear(fab, as, dest, source, nreduce, pWrk, pSync)
	case "linear/max":
		return reduce.Int32MaxToAllLinear(fab, as, dest, source, nreduce, pWrk, pSync)
	case "linear/and":
		return reduce.Int32AndToAllLinear(fab, as, dest, source, nreduce, pWrk, pSync)
	case "linear/or":
		return reduce.Int32OrToAllLinear(fab, as, dest, source, nreduce, pWrk, pSync)
	case "linear/xor":
		return reduce.Int32XorToAllLinear(fab, as, dest, source, nreduce, pWrk, pSync)
	case "binomial/sum":
		return reduce.Int32SumToAllBinomial(fab, as, dest, source, nreduce, pWrk, pSync)
	case "binomial/prod":
		return reduce.Int32ProdToAllBinomial(fab, as, dest, source, nreduce, pWrk, pSync)
	case "binomial/min":
		return reduce.Int32MinToAllBinomial(fab, as, dest, source, nreduce, pWrk, pSync)
	case "binomial/max":
		return reduce.Int32MaxToAllBinomial(fab, as, dest, source, nreduce, pWrk, pSync)
	case "binomial/and":
		return reduce.Int32AndToAllBinomial(fab, as, dest, source, nreduce, pWrk, pSync)
	case "binomial/or":
		return reduce.Int32OrToAllBinomial(fab, as, dest, source, nreduce, pWrk, pSync)
	case "binomial/xor":
		return reduce.Int32XorToAllBinomial(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rec_dbl/sum":
		return reduce.Int32SumToAllRecDbl(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rec_dbl/prod":
		return reduce.Int32ProdToAllRecDbl(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rec_dbl/min":
		return reduce.Int32MinToAllRecDbl(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rec_dbl/max":
		return reduce.Int32MaxToAllRecDbl(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rec_dbl/and":
		return reduce.Int32AndToAllRecDbl(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rec_dbl/or":
		return reduce.Int32OrToAllRecDbl(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rec_dbl/xor":
		return reduce.Int32XorToAllRecDbl(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rabenseifner/sum":
		return reduce.Int32SumToAllRabenseifner(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rabenseifner/prod":
		return reduce.Int32ProdToAllRabenseifner(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rabenseifner/min":
		return reduce.Int32MinToAllRabenseifner(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rabenseifner/max":
		return reduce.Int32MaxToAllRabenseifner(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rabenseifner/and":
		return reduce.Int32AndToAllRabenseifner(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rabenseifner/or":
		return reduce.Int32OrToAllRabenseifner(fab, as, dest, source, nreduce, pWrk, pSync)
	case "rabenseifner/xor":
		return reduce.Int32XorToAllRabenseifner(fab, as, dest, source, nreduce, pWrk, pSync)
	default:
		return errors.Errorf("unknown algo/op combination %q/%q", algo, op)
	}
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
