package main

import "github.com/gordonklaus/pastorale/score"

var bassA11 = score.Section{"bass A1.1", []score.Event{
	{240, "f,", .93, 0},
	{24, "_b,,", .93, 0},
	{16, "_b,,", .93, 0}, {8, "a,,", .93, 0},
	{48, "g,,", .93, 0},
	{12, "d,", .93, 0}, {12, "f,", .93, 0},
	{12, "e,", .93, 0}, {9, "c,", .93, 0}, {3, "c,", 0, 0},
}}

var bassA21 = score.Section{"bass A2.1", []score.Event{
	{24, "c,", .92, 0},
	{216, "f,,", .92, 0},
	{24, "_b,,", .92, 0},
	{16, "_b,,", .92, 0}, {8, "a,,", .92, 0},
	{48, "g,,", .92, 0},
	{12, "d,", .92, 0}, {12, "f,", .92, 0},
	{12, "e,", .92, 0}, {9, "c,", .92, 0}, {3, "c,", 0, 0},
}}

var bassB1 = score.Section{"bass B.1", []score.Event{
	{144, "c,", .94, 0},
	{11 * 24, "c,,", .94, 0},
	{16, "c,", .94, 0}, {8, "=b,,", .94, 0},
	{24, "a,,", .94, 0},
	{16, "a,", .94, 0}, {8, "g,", .94, 0},
	{12, "f,", .94, 0}, {12, "f,,", .94, 0},
	{12, "f,", .94, 0}, {12, "e,", .94, 0},
	{12, "d,", .94, 0}, {10, "d,,", .94, 0}, {2, "d,,", 0, 0},
	{12, "d,,", .94, 0}, {12, "a,,", .94, 0},
	{12, "g,,", .94, 0}, {10, "g,", .94, 0}, {2, "g,", 0, 0},
	{12, "g,", .94, 0}, {12, "f,", .94, 0},
	{12, "e,", .94, 0}, {12, "d,", .94, 0},
	{12, "c,", .94, 0}, {4, "d,", .94, 0}, {6, "c,", .94, 0}, {2, "c,", 0, 0},
	{12, "c,", .94, 0}, {10, "f,,", .94, 0}, {2, "f,,", .94, 0},
	{24, "f,,", .94, 0},
	{10, "f,,", .94, 0}, {2, "f,,", 0, 0}, {10, "d,,", .94, 0},
	{2, "d,,", 0, 0},
	{10, "d,,", .94, 0}, {2, "d,,", 0, 0}, {2, "g,,", .94, 0}, {2, "g,,", 0, 0},
	{6, "g,,", .94, 0}, {2, "g,,", 0, 0},
	{24, "g,,", .94, 0},
	{10, "g,,", .94, 0}, {2, "g,,", 0, 0}, {10, "e,,", .94, 0},
	{2, "e,,", 0, 0},
	{10, "e,,", .94, 0}, {2, "e,,", 0, 0}, {2, "a,,", .94, 0}, {2, "a,,", 0, 0},
	{6, "a,,", .94, 0}, {2, "a,,", 0, 0},
	{22, "a,,", .94, 0}, {2, "a,,", 0, 0},
	{4, "f,,", .94, .94}, {4, "f,,", .94, .94},
	{4, "f,,", .94, .94}, {4, "f,,", .94, .94},
	{4, "d,,", .94, .94}, {4, "d,,", .94, .93},
	{4, "g,,", .94, 1.1}, {4, "g,,", .94, 1.1},
	{4, "g,,", .94, 1.1}, {4, "g,,", .94, 1.1},
	{4, "g,,", .94, 0}, {4, "g,,", .94, 0},
	{12, "g,,", .94, 0}, {4, "g,,", .94, 0}, {8, "g,,", .94, 0},
	{24 * 10, "g,,", .94, 0},
	{40, "a,,", .94, 0}, {4, "g,,", .94, .96}, {4, "e,,", .94, .96},
	{4, "c,,", .93, .96}, {2, "c,,", .93, .96}, {2, "c,,", 0, 1},
	{4, "c,", .92, .96}, {2, "c,", .92, .95},
	{2, "c,", 0, 1},
	{4, "c,,", .92, .94}, {2, "c,,", .92, .93},
	{2, "c,,", 0, 1},
}}

var bassA12 = score.Section{"bass A1.2", []score.Event{
	{4, "f,,", .9, 1.045}, {4, "f,,", .9, 1.045},
	{4, "f,,", .9, 1.045}, {4, "f,,", .9, 1.045},
	{4, "f,,", .9, 1.045}, {4, "f,,", .9, 1.045},
	{216, "f,,", .9, 0},
	{24, "_b,,", .9, 0},
	{16, "_b,,", .9, 0}, {8, "a,,", .9, 0},
	{48, "g,,", .9, 0},
	{12, "d,", .9, 0}, {12, "f,", .9, 0},
	{12, "e,", .9, 0}, {9, "c,", .9, 0}, {3, "c,", 0, 0},
}}

var bassA22 = score.Section{"bass A2.2", []score.Event{
	{24, "c,", .88, 0},
	{216, "f,,", .88, 0},
	{24, "_b,,", .88, 0},
	{16, "_b,,", .88, 0}, {8, "a,,", .88, 0},
	{48, "g,,", .88, 0},
	{12, "d,", .88, 0}, {12, "f,", .88, 0},
	{12, "e,", .89, 0}, {9, "c,", .9, 0}, {3, "c,", 0, 0},
}}

var bassB2 = score.Section{"bass B.2", []score.Event{
	{24, "c,", .91, 0},
	{24, "c,", .92, 0},
	{24, "c,", .93, 0},
	{24, "c,", .94, 0},
	{24, "c,", .95, 0},
	{24, "c,", .96, 0},
	{11 * 24, "c,,", .97, 0},
	{16, "c,", .97, 0}, {8, "=b,,", .97, 0},
	{24, "a,,", .97, 0},
	{16, "a,", .97, 0}, {8, "g,", .97, 0},
	{12, "f,", .97, 0}, {12, "f,,", .97, 0},
	{12, "f,", .97, 0}, {12, "e,", .97, 0},
	{12, "d,", .97, 0}, {10, "d,,", .97, 0}, {2, "d,,", 0, 0},
	{12, "d,,", .97, 0}, {12, "a,,", .97, 0},
	{12, "g,,", .97, 0}, {10, "g,", .97, 0}, {2, "g,", 0, 0},
	{12, "g,", .97, 0}, {12, "f,", .97, 0},
	{12, "e,", .97, 0}, {12, "d,", .97, 0},
	{12, "c,", .97, 0}, {4, "d,", .97, 0}, {6, "c,", .97, 0}, {2, "c,", 0, 0},
	{12, "c,", .97, 0}, {10, "f,,", .97, 0}, {2, "f,,", .97, 0},
	{24, "f,,", .97, 0},
	{10, "f,,", .97, 0}, {2, "f,,", 0, 0}, {10, "d,,", .97, 0}, {2, "d,,", 0, 0},
	{10, "d,,", .97, 0}, {2, "d,,", 0, 0}, {2, "g,,", .97, 0}, {2, "g,,", 0, 0},
	{6, "g,,", .97, 0}, {2, "g,,", 0, 0},
	{24, "g,,", .97, 0},
	{10, "g,,", .97, 0}, {2, "g,,", 0, 0}, {10, "e,,", .97, 0}, {2, "e,,", 0, 0},
	{10, "e,,", .97, 0}, {2, "e,,", 0, 0}, {2, "a,,", .97, 0}, {2, "a,,", 0, 0},
	{6, "a,,", .97, 0}, {2, "a,,", 0, 0},
	{22, "a,,", .97, 0}, {2, "a,,", 0, 0},
	{4, "f,,", .97, .925}, {4, "f,,", .97, .925},
	{4, "f,,", .97, .925}, {4, "f,,", .97, .925},
	{4, "d,,", .97, .925}, {2, "d,,", .97, .925}, {2, "d,,", 0, 1},
	{4, "g,,", .97, 1.08}, {4, "g,,", .97, 1.08},
	{4, "g,,", .97, 1.08}, {4, "g,,", .97, 1.08},
	{4, "g,,", .97, 1.08}, {4, "g,,", .97, 1.08},
	{12, "g,,", .97, 0}, {4, "g,,", .97, 0}, {8, "g,,", .97, 0},
	{24 * 10, "g,,", .97, 0},
	{40, "a,,", .97, 0}, {4, "g,,", .96, .95}, {4, "e,,", .95, .95},
	{4, "c,,", .94, .92}, {2, "c,,", .94, .92}, {2, "c,,", 0, 1},
	{4, "c,", .93, .92}, {2, "c,", .93, .92}, {2, "c,", 0, 1},
	{4, "c,,", .91, .91}, {2, "c,,", .9, .9}, {2, "c,,", 0, 1},
}}

var bassA13 = score.Section{"bass A1.3", []score.Event{
	{4, "f,,", .88, 1.1248}, {4, "f,,", .88, 1.128},
	{4, "f,,", .88, 1.128}, {4, "f,,", .88, 1.128},
	{4, "f,,", .88, 1.128}, {4, "f,,", .88, 1.128},
	{216, "f,,", .88, 0},
	{24, "_b,,", .88, 0},
	{16, "_b,,", .88, 0}, {8, "a,,", .88, 0},
	{48, "g,,", .88, 0},
	{12, "d,", .88, 0}, {12, "f,", .88, 0},
	{12, "e,", .88, 0}, {9, "c,", .88, 0}, {3, "c,", 0, 0},
}}

var bassA23 = score.Section{"bass A2.3", []score.Event{
	{24, "c,", .86, .95},
	{216, "f,,", .86, 1},
	{24, "_b,,", .86, 1},
	{16, "_b,,", .86, 1}, {8, "a,,", .86, 1},
	{48, "g,,", .86, 1},
	{12, "d,", .86, 1}, {12, "f,", .86, 1},
	{12, "e,", .86, 1}, {8, "c,", .86, 1}, {4, "c,", 0, 1},
}}

var bassCoda = score.Section{"bass coda", []score.Event{
	{4, "a,,", .86, .962}, {4, "a,,", .86, .962},
	{2, "a,,", .86, .962}, {2, "a,,", .86, .962}, {4, "a,,", .86, .962},
	{4, "_b,,", .86, .962}, {2, "_b,,", .86, .962},
	{2, "_b,,", .86, 1},
	{4, "c,", .86, .962}, {4, "c,", .86, .962},
	{4, "c,", .86, .962}, {2, "c,", .86, .952},
	{2, "c,", 0, 1},
	{4, "c,,", .86, .952}, {2, "c,,", .86, .5},
	{2, "c,,", 0, 1},
	{4, "f,,", .86, 1.62}, {4, "f,,", .86, 1},
	{4, "f,,", .86, 1},
	{4, "f,,", .86, 1}, {4, "f,,", .86, .8},
	{4, "f,,", .86, 1},
	{24, "f,,", .86, .65},
	{24, "f,,", .01, 0},
}}
