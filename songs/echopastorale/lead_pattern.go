package main

import "github.com/gordonklaus/pastorale/score"

var leadA11 = score.Section{"lead A1.1", []score.Event{
	{16, "f", .93, 1}, {7, "g", .93, 0}, {1, "g", 0, 0},
	{16, "a", .93, 0}, {7, "_b", .93, 0}, {1, "_b", 0, 0},
	{12, "c'", .93, 0}, {4, "d'", .93, 0}, {4, "_b", .93, 0}, {4, "a", .93, 0},
	{12, "g", .93, 0}, {4, "g", 0, 0}, {8, "g", .93, 0},
	{16, "_b", .93, 0}, {6, "c'", .93, 0}, {2, "c'", 0, 0},
	{12, "d'", .93, 0}, {4, "c'", .93, 0}, {4, "_b", .93, 0}, {4, "g", .93, 0},
	{12, "a", .93, 0}, {4, "a", 0, 0}, {8, "g", .93, 0},
	{8, "f", .93, 0}, {8, "f", 0, 0}, {8, "_b", .93, 0},
	{12, "a", .93, 0}, {4, "c'", .93, 0}, {4, "d'", .93, 0}, {4, "e'", .93, 0},
	{16, "f'", .93, 0}, {7, "e'", .93, 0}, {1, "e'", 0, 0},
	{16, "d'", .93, 0}, {7, "c'", .93, 0}, {1, "c'", 0, 0},
	{12, "d'", .93, 0}, {4, "e'", .93, 0}, {7, "f'", .93, 0}, {1, "f'", 0, 0},
	{16, "_b", .93, 0}, {7, "a", .93, 0}, {1, "a", 0, 0},
	{12, "_b", .93, 0}, {4, "c'", .93, 0}, {8, "d'", .93, 0},
	{8, "g", .93, 0}, {8, "a", .93, 0}, {8, "_b", .93, 0},
	{12, "c'", .93, 0}, {4, "_b", .93, 0}, {4, "a", .93, 0}, {4, "g", .93, 0},
}}

var leadA21 = score.Section{"lead A2.1", []score.Event{
	{16, "f", .92, 0}, {7, "g", .92, 0}, {1, "g", 0, 0},
	{16, "a", .92, 0}, {7, "_b", .92, 0}, {1, "_b", 0, 0},
	{12, "c'", .92, 0}, {4, "d'", .92, 0}, {4, "_b", .92, 0}, {4, "a", .92, 0},
	{12, "g", .92, 0}, {4, "g", 0, 0}, {8, "g", .92, 0},
	{16, "_b", .92, 0}, {7, "c'", .92, 0}, {1, "c'", 0, 0},
	{12, "d'", .92, 0}, {4, "c'", .92, 0}, {4, "_b", .92, 0}, {4, "g", .92, 0},
	{12, "a", .92, 0}, {4, "a", 0, 0}, {8, "g", .92, 0},
	{12, "f", .92, 0}, {4, "f", 0, 0}, {8, "_b", .92, 0},
	{10, "a", .92, 0}, {2, "a", 0, 0}, {4, "c'", .92, 0},
	{4, "d'", .92, 0}, {4, "e'", .92, 0},
	{16, "f'", .92, 0}, {7, "e'", .92, 0}, {1, "e'", 0, 0},
	{16, "d'", .92, 0}, {7, "c'", .92, 0}, {1, "c'", 0, 0},
	{12, "d'", .92, 0}, {4, "e'", .92, 0}, {8, "f'", .92, 0},
	{16, "_b", .92, 0}, {6, "a", .92, 0}, {2, "a", 0, 0},
	{12, "_b", .92, 0}, {4, "c'", .92, 0}, {8, "d'", .92, 0},
	{8, "g", .92, 0}, {8, "a", .92, 0}, {8, "=b", .92, 0},
	{12, "c'", .92, 0}, {3, "d'", .925, 0}, {1, "d'", 0, 0}, {4, "d'", .93, 0},
	{2, "e'", .935, 0}, {2, "e'", 0, 0},
}}

var leadB1 = score.Section{"lead B.1", []score.Event{
	{4, "e'", .94, 0}, {4, "d'", .94, 0}, {4, "c'", .94, 0}, {4, "=b", .94, 0},
	{4, "a", .94, 0},
	{2, "=b", .94, 0}, {2, "=b", 0, 0},
	{10, "g", .94, 0}, {2, "g", 0, 0}, {2, "g", .94, 0}, {2, "g", 0, 0},
	{8, "g", .94, 0},
	{4, "c'", .94, 0}, {4, "d'", .94, 0}, {4, "e'", .94, 0}, {4, "c'", .94, 0},
	{4, "=b", .94, 0}, {4, "a", .94, 0},
	{12, "g", .94, 0}, {4, "a", .94, 0}, {7, "g", .94, 0}, {1, "g", 0, 0},
	{12, "e'", .94, 0}, {4, "f'", .94, 0}, {7, "e'", .94, 0}, {1, "e'", 0, 0},
	{16, "c'", .94, 0}, {6, "g", .94, 0}, {2, "g", 0, 0},
	{12, "g'", .94, 0}, {4, "a'", .94, 0}, {7, "f'", .94, 0}, {1, "f'", 0, 0},
	{12, "e'", .94, 0}, {4, "f'", .94, 0}, {8, "d'", .94, 0},
	{12, "c'", .94, 0}, {4, "d'", .94, 0}, {4, "e'", .94, 0}, {4, "f'", .94, 0},
	{16, "g'", .94, 0}, {6, "f'", .94, 0}, {2, "f'", 0, 0},
	{16, "e'", .94, 0}, {6, "d'", .94, 0}, {2, "d'", 0, 0},
	{4, "c'", .94, 0}, {4, "=b", .94, 0}, {4, "c'", .94, 0}, {4, "d'", .94, 0},
	{4, "e'", .94, 0}, {4, "f'", .94, 0},
	{8, "g'", .94, 0}, {4, "g'", 0, 0}, {2, "g'", .94, 0}, {2, "g'", 0, 0},
	{2, "g'", .94, 0}, {2, "g'", 0, 0},
	{2, "g'", .94, 0}, {2, "g'", 0, 0},
	{6, "e'", .94, 0}, {2, "e'", 0, 0}, {16, "e'", .94, 0},
	{12, "c'", .94, 0}, {4, "a", .94, 0}, {4, "g", .94, 0}, {4, "f", .94, 0},
	{12, "e", .94, 0}, {4, "f", .94, 0}, {4, "e", .94, 0}, {4, "e", 0, 0},
	{12, "g", .94, 0}, {4, "a", .94, 0}, {4, "g", .94, 0}, {4, "g", .94, 0},
	{10, "e'", .94, 0}, {2, "e'", 0, 0}, {4, "f'", .94, 0}, {4, "e'", .94, 0}, {4, "d'", .94, 0},
	{16, "c'", .94, 0}, {8, "=b", .94, 0},
	{12, "c'", .94, 0}, {4, "d'", .94, 0}, {8, "e'", .94, 0},
	{16, "a", .94, 0}, {7, "g", .94, 0}, {1, "g", 0, 0},
	{12, "a", .94, 0}, {4, "=b", .94, 0}, {8, "c'", .94, 0},
	{24, "f", .94, 0},
	{16, "d'", .94, 0}, {7, "c'", .94, 0}, {1, "c'", 0, 0},
	{16, "=b", .94, 0}, {6, "a", .94, 0}, {2, "a", 0, 0},
	{12, "=b", .94, 0}, {4, "c'", .94, 0}, {8, "d'", .94, 0},
	{12, "g", .94, 0}, {4, "a", .94, 0}, {6, "g", .94, 0}, {2, "g", 0, 0},
	{12, "e'", .94, 0}, {4, "e'", 0, 0}, {8, "e'", .94, 0},
	{12, "c'", .94, 0}, {4, "d'", .94, 0}, {7, "=b", .94, 0}, {1, "=b", 0, 0},
	{12, "a", .94, 0}, {4, "c'", .94, 0}, {4, "d'", .94, 0}, {4, "e'", .94, 0},
	{12, "f'", .94, 0}, {4, "g'", .94, 0}, {6, "e'", .94, 0}, {2, "e'", 0, 0},
	{12, "d'", .94, 0}, {4, "e'", .94, 0}, {7, "c'", .94, 0}, {1, "c'", 0, 0},
	{12, "=b", .94, 0}, {1, "=b", 0, 0}, {4, "d'", .94, 0}, {4, "e'", .94, 0},
	{4, "f'", .94, 0},
	{12, "g'", .94, 0}, {4, "a'", .94, 0}, {7, "f'", .94, 0}, {1, "f'", 0, 0},
	{4, "e'", .94, 0}, {4, "e'", .94, 0},
	{4, "e'", .94, 0}, {4, "f'", .94, 0},
	{4, "d'", .94, 0}, {3, "d'", .94, 0}, {1, "d'", 0, 0},
	{4, "c'", .94, 0}, {4, "c'", .94, 0},
	{2, "c'", .94, 0}, {2, "c'", 0, 0}, {4, "e'", .94, 0},
	{4, "f'", .94, 1}, {4, "g'", .94, 0},
	{4, "a'", .94, 0}, {4, "a'", .94, 0},
	{4, "a'", .94, 0}, {4, "g'", .94, 1},
	{6, "a'", .94, 0}, {2, "a'", 0, 0},
	{4, "f'", .94, 0}, {4, "g'", .94, 0}, {4, "f'", .94, 0}, {4, "e'", .94, 0},
	{4, "f'", .94, 0}, {4, "e'", .94, 0},
	{4, "d'", .94, 0}, {4, "e'", .94, 0}, {4, "d'", .94, 0}, {4, "c'", .94, 0},
	{4, "d'", .94, 0}, {4, "c'", .94, 0},
	{4, "=b", .94, 0}, {4, "c'", .94, 0}, {4, "d'", .94, 0}, {4, "d'", 0, 0},
	{4, "=b", .94, 0}, {4, "=b", 0, 0},
	{12, "g'", .94, 0}, {4, "f'", .94, 0}, {6, "g'", .94, 0},
	{2, "g'", 0, 0},
	{4, "e'", .94, 0}, {4, "f'", .94, 0}, {4, "e'", .94, 0}, {4, "d'", .94, 0},
	{4, "e'", .94, 0}, {4, "d'", .94, 0},
	{4, "c'", .94, 0}, {4, "d'", .94, 0}, {4, "c'", .94, 0}, {4, "=b", .94, 0},
	{4, "c'", .94, 0}, {4, "=b", .94, 0},
	{4, "a", .94, 0}, {4, "=b", .94, 0}, {4, "c'", .94, 0}, {4, "c'", 0, 0},
	{4, "a", .94, 0}, {4, "a", 0, 0},
	{12, "f'", .94, 0}, {4, "e'", .94, 0}, {6, "f'", .94, 0}, {2, "f'", 0, 0},
	{4, "d'", .94, 0}, {4, "e'", .94, 0}, {4, "d'", .94, 0}, {4, "c'", .94, 0},
	{4, "d'", .94, 0}, {4, "c'", .94, 0},
	{4, "=b", .94, 0}, {4, "c'", .94, 0}, {4, "=b", .94, 0}, {4, "a", .94, 0},
	{4, "=b", .94, 0}, {4, "c'", .94, 0},
	{12, "d'", .94, 0}, {4, "d'", 0, 0}, {2, "d'", .94, 0}, {2, "d'", 0, 0},
	{4, "d'", .94, 0},
	{12, "f", .94, 0}, {4, "g", .94, 0}, {4, "a", .94, 0},
	{4, "=b", .94, 0},
	{12, "c'", .94, 0}, {4, "=b", .94, 0}, {4, "c'", .94, 0}, {4, "c'", 0, 0},
	{4, "e", .94, 0}, {4, "e", .94, 0},
	{4, "g", .94, 0}, {4, "g", .94, 0},
	{4, "g", 0, 0}, {4, "g", 0, 0},
	{4, "c'", .94, 0}, {4, "c'", .94, 0},
	{4, "c'", .94, 0}, {4, "_b", .935, 0},
	{4, "a", .93, 0}, {4, "g", .92, 0},
}}

var leadA12 = score.Section{"lead A1.2", []score.Event{
	{4, "f", .9, 0}, {4, "f", .9, 0},
	{4, "f", .9, 0}, {4, "f", .9, 0},
	{7, "g", .9, 0}, {1, "g", 0, 0},
	{16, "a", .9, 0}, {7, "_b", .9, 0}, {1, "_b", 0, 0},
	{12, "c'", .9, 0}, {4, "d'", .9, 0}, {4, "_b", .9, 0}, {4, "a", .9, 0},
	{12, "g", .9, 0}, {4, "g", 0, 0}, {8, "g", .9, 0},
	{16, "_b", .9, 0}, {6, "c'", .9, 0}, {2, "c'", 0, 0},
	{12, "d'", .9, 0}, {4, "c'", .9, 0}, {4, "_b", .9, 0}, {4, "g", .9, 0},
	{12, "a", .9, 0}, {4, "a", 0, 0}, {8, "g", .9, 0},
	{8, "f", .9, 0}, {8, "f", 0, 0}, {8, "_b", .9, 0},
	{12, "a", .9, 0}, {4, "c'", .9, 0}, {4, "d'", .9, 0}, {4, "e'", .9, 0},
	{16, "f'", .9, 0}, {7, "e'", .9, 0}, {1, "e'", 0, 0},
	{16, "d'", .9, 0}, {7, "c'", .9, 0}, {1, "c'", 0, 0},
	{12, "d'", .9, 0}, {4, "e'", .9, 0}, {7, "f'", .9, 0}, {1, "f'", 0, 0},
	{16, "_b", .9, 0}, {7, "a", .9, 0}, {1, "a", 0, 0},
	{12, "_b", .9, 0}, {4, "c'", .9, 0}, {8, "d'", .9, 0},
	{8, "g", .9, 0}, {8, "a", .9, 0}, {8, "_b", .9, 0},
	{12, "c'", .9, 0}, {4, "_b", .9, 0}, {4, "a", .89, 0}, {4, "g", .89, 0},
}}

var leadA22 = score.Section{"lead A2.2", []score.Event{
	{16, "f", .88, 0}, {7, "g", .88, 0}, {1, "g", 0, 0},
	{16, "a", .88, 0}, {7, "_b", .88, 0}, {1, "_b", 0, 0},
	{12, "c'", .88, 0}, {4, "d'", .88, 0}, {4, "_b", .88, 0}, {4, "a", .88, 0},
	{12, "g", .88, 0}, {4, "g", 0, 0}, {8, "g", .88, 0},
	{16, "_b", .88, 0}, {7, "c'", .88, 0}, {1, "c'", 0, 0},
	{12, "d'", .88, 0}, {4, "c'", .88, 0}, {4, "_b", .88, 0}, {4, "g", .88, 0},
	{10, "a", .88, 0}, {6, "a", 0, 0}, {8, "g", .88, 0},
	{12, "f", .88, 0}, {4, "f", 0, 0}, {8, "_b", .88, 0},
	{10, "a", .88, 0}, {2, "a", 0, 0}, {4, "c'", .88, 0},
	{4, "d'", .88, 0}, {4, "e'", .88, 0},
	{16, "f'", .88, 0}, {7, "e'", .88, 0}, {1, "e'", 0, 0},
	{16, "d'", .88, 0}, {7, "c'", .88, 0}, {1, "c'", 0, 0},
	{12, "d'", .88, 0}, {4, "e'", .88, 0}, {8, "f'", .88, 0},
	{16, "_b", .88, 0}, {6, "a", .88, 0}, {2, "a", 0, 0},
	{12, "_b", .88, 0}, {4, "c'", .88, 0}, {8, "d'", .88, 0},
	{8, "g", .88, 0}, {8, "a", .88, 0}, {8, "=b", .88, 0},
	{12, "c'", .88, 0}, {3, "d'", .89, 0}, {1, "d'", 0, 0}, {4, "d'", .903, 0},
	{2, "e'", .907, 0}, {2, "e'", 0, 0},
}}

var leadB2 = score.Section{"lead B.2", []score.Event{
	{4, "e'", .91, 0}, {4, "d'", .91, 0}, {4, "c'", .912, 0}, {4, "=b", .914, 0},
	{4, "a", .916, 0},
	{2, "=b", .918, 0}, {2, "=b", 0, 0},
	{10, "g", .92, 0}, {2, "g", 0, 0}, {2, "g", .923, 0}, {2, "g", 0, 0},
	{8, "g", .927, 0},
	{4, "c'", .93, 0}, {4, "d'", .932, 0}, {4, "e'", .934, 0}, {4, "c'", .936, 0},
	{4, "=b", .938, 0}, {4, "a", .939, 0},
	{12, "g", .94, 0}, {4, "a", .943, 0}, {7, "g", .947, 0}, {1, "g", 0, 0},
	{12, "e'", .95, 0}, {4, "f'", .953, 0}, {7, "e'", .957, 0}, {1, "e'", 0, 0},
	{16, "c'", .96, 0}, {6, "g", .96, 0}, {2, "g", 0, 0},
	{12, "g'", .97, 0}, {4, "a'", .97, 0}, {7, "f'", .97, 0}, {1, "f'", 0, 0},
	{12, "e'", .97, 0}, {4, "f'", .97, 0}, {8, "d'", .97, 0},
	{12, "c'", .97, 0}, {4, "d'", .97, 0}, {4, "e'", .97, 0}, {4, "f'", .97, 0},
	{16, "g'", .97, 0}, {6, "f'", .97, 0}, {2, "f'", 0, 0},
	{16, "e'", .97, 0}, {6, "d'", .97, 0}, {2, "d'", 0, 0},
	{4, "c'", .97, 0}, {4, "=b", .97, 0}, {4, "c'", .97, 0}, {4, "d'", .97, 0},
	{4, "e'", .97, 0}, {4, "f'", .97, 0},
	{8, "g'", .97, 0}, {4, "g'", 0, 0}, {2, "g'", .97, 0}, {2, "g'", 0, 0},
	{2, "g'", .97, 0}, {2, "g'", 0, 0},
	{2, "g'", .97, 0}, {2, "g'", 0, 0},
	{6, "e'", .97, 0}, {2, "e'", 0, 0}, {16, "e'", .97, 0},
	{12, "c'", .97, 0}, {4, "a", .97, 0}, {4, "g", .97, 0}, {4, "f", .97, 0},
	{12, "e", .97, 0}, {4, "f", .97, 0}, {4, "e", .97, 0}, {4, "e", 0, 0},
	{12, "g", .97, 0}, {4, "a", .97, 0}, {4, "g", .97, 0}, {4, "g", .97, 0},
	{10, "e'", .97, 0}, {2, "e'", 0, 0}, {4, "f'", .97, 0}, {4, "e'", .97, 0},
	{4, "d'", .97, 0},
	{16, "c'", .97, 0}, {8, "=b", .97, 0},
	{12, "c'", .97, 0}, {4, "d'", .97, 0}, {8, "e'", .97, 0},
	{16, "a", .97, 0}, {7, "g", .97, 0}, {1, "g", 0, 0},
	{12, "a", .97, 0}, {4, "=b", .97, 0}, {8, "c'", .97, 0},
	{24, "f", .97, 0},
	{16, "d'", .97, 0}, {7, "c'", .97, 0}, {1, "c'", 0, 0},
	{16, "=b", .97, 0}, {6, "a", .97, 0}, {2, "a", 0, 0},
	{12, "=b", .97, 0}, {4, "c'", .97, 0}, {8, "d'", .97, 0},
	{12, "g", .97, 0}, {4, "a", .97, 0}, {6, "g", .97, 0}, {2, "g", 0, 0},
	{12, "e'", .97, 0}, {4, "e'", 0, 0}, {8, "e'", .97, 0},
	{12, "c'", .97, 0}, {4, "d'", .97, 0}, {7, "=b", .97, 0}, {1, "=b", 0, 0},
	{12, "a", .97, 0}, {4, "c'", .97, 0}, {4, "d'", .97, 0}, {4, "e'", .97, 0},
	{12, "f'", .97, 0}, {4, "g'", .97, 0}, {6, "e'", .97, 0}, {2, "e'", 0, 0},
	{12, "d'", .97, 0}, {4, "e'", .97, 0}, {7, "c'", .97, 0}, {1, "c'", 0, 0},
	{11, "=b", .97, 0}, {1, "=b", 0, 0}, {4, "d'", .97, 0}, {4, "e'", .97, 0},
	{4, "f'", .97, 0},
	{12, "g'", .97, 0}, {4, "a'", .97, 0}, {7, "f'", .97, 0}, {1, "f'", 0, 0},
	{4, "e'", .97, 0}, {4, "e'", .97, 0},
	{2, "e'", .97, 0}, {2, "e'", .97, 0}, {4, "f'", .97, 0},
	{4, "d'", .97, 0}, {3, "d'", .97, 0}, {1, "d'", 0, 0},
	{4, "c'", .97, 0}, {4, "c'", .97, 0},
	{2, "c'", .85, 0}, {2, "c'", 0, 0}, {4, "e'", .97, 0},
	{4, "f'", .97, 0}, {4, "g'", .97, 0},
	{4, "a'", .97, 0}, {4, "a'", .97, 0},
	{4, "a'", .97, 0}, {4, "g'", .97, 0},
	{4, "a'", .97, 0}, {2, "a'", .97, 0}, {2, "a'", 0, 0},
	{4, "f'", .97, 0}, {4, "g'", .97, 0}, {4, "f'", .97, 0}, {4, "e'", .97, 0},
	{4, "f'", .97, 0}, {4, "e'", .97, 0},
	{4, "d'", .97, 0}, {4, "e'", .97, 0}, {4, "d'", .97, 0}, {4, "c'", .97, 0},
	{4, "d'", .97, 0}, {4, "c'", .97, 0},
	{4, "=b", .97, 0}, {4, "c'", .97, 0}, {4, "d'", .97, 0}, {4, "d'", 0, 0},
	{4, "=b", .97, 0}, {4, "=b", 0, 0},
	{12, "g'", .97, 0}, {4, "f'", .97, 0}, {6, "g'", .97, 0},
	{2, "g'", 0, 0},
	{4, "e'", .97, 0}, {4, "f'", .97, 0}, {4, "e'", .97, 0}, {4, "d'", .97, 0},
	{4, "e'", .97, 0}, {4, "d'", .97, 0},
	{4, "c'", .97, 0}, {4, "d'", .97, 0}, {4, "c'", .97, 0}, {4, "=b", .97, 0},
	{4, "c'", .97, 0}, {4, "=b", .97, 0},
	{4, "a", .97, 0}, {4, "=b", .97, 0}, {4, "c'", .97, 0}, {4, "c'", 0, 0},
	{4, "a", .97, 0}, {4, "a", 0, 0},
	{12, "f'", .97, 0}, {4, "e'", .97, 0}, {6, "f'", .97, 0}, {2, "f'", 0, 0},
	{4, "d'", .97, 0}, {4, "e'", .97, 0}, {4, "d'", .97, 0}, {4, "c'", .97, 0},
	{4, "d'", .97, 0}, {4, "c'", .97, 0},
	{4, "=b", .97, 0}, {4, "c'", .97, 0}, {4, "=b", .97, 0}, {4, "a", .97, 0},
	{4, "=b", .97, 0}, {4, "c'", .97, 0},
	{12, "d'", .97, 0}, {4, "d'", 0, 0}, {2, "d'", .97, 0}, {2, "d'", 0, 0},
	{4, "d'", .97, 0},
	{12, "f", .97, 0}, {4, "g", .97, 0}, {4, "a", .97, 0},
	{4, "=b", .97, 0},
	{12, "c'", .97, 0}, {4, "=b", .97, 0}, {4, "c'", .97, 0}, {4, "c'", 0, 0},
	{4, "e", .97, 0}, {4, "e", .97, 0},
	{4, "g", .97, 0}, {4, "g", .97, 0},
	{4, "g", 0, .97}, {4, "g", 0, 0},
	{4, "c'", .96, 0}, {4, "c'", .96, 0},
	{4, "c'", .96, 0}, {4, "_b", .95, 0},
	{4, "a", .94, 0}, {4, "g", .93, 0},
}}

var leadA13 = score.Section{"lead A1.3", []score.Event{
	{4, "f", .92, 0}, {4, "f", .92, 0},
	{4, "f", .92, 0}, {4, "f", .92, 0},
	{7, "g", .91, 0}, {1, "g", 0, 0},
	{16, "a", .9, 0}, {7, "_b", .89, 0}, {1, "_b", 0, 0},
	{12, "c'", .89, 0}, {4, "d'", .89, 0}, {4, "_b", .89, 0}, {4, "a", .89, 0},
	{12, "g", .89, 0}, {4, "g", 0, 0}, {8, "g", .89, 0},
	{16, "_b", .89, 0}, {6, "c'", .89, 0}, {2, "c'", 0, 0},
	{12, "d'", .89, 0}, {4, "c'", .89, 0}, {4, "_b", .89, 0}, {4, "g", .89, 0},
	{12, "a", .89, 0}, {4, "a", 0, 0}, {8, "g", .89, 0},
	{12, "f", .89, 0}, {4, "f", 0, 0}, {8, "_b", .89, 0},
	{12, "a", .89, 0}, {4, "c'", .89, 0}, {4, "d'", .89, 0}, {4, "e'", .89, 0},
	{16, "f'", .89, 0}, {7, "e'", .89, 0}, {1, "e'", 0, 0},
	{16, "d'", .89, 0}, {7, "c'", .89, 0}, {1, "c'", 0, 0},
	{12, "d'", .89, 0}, {4, "e'", .89, 0}, {7, "f'", .89, 0}, {1, "f'", 0, 0},
	{16, "_b", .89, 0}, {7, "a", .89, 0}, {1, "a", 0, 0},
	{12, "_b", .89, 0}, {4, "c'", .89, 0}, {8, "d'", .89, 0},
	{8, "g", .89, 0}, {8, "a", .89, 0}, {8, "_b", .89, 0},
	{12, "c'", .89, 0}, {4, "_b", .88, 0}, {4, "a", .87, 0}, {4, "g", .87, 0},
}}

var leadA23 = score.Section{"lead A2.3", []score.Event{
	{16, "f", .87, 1}, {7, "g", .87, 0}, {1, "g", 0, 0},
	{16, "a", .86, 0}, {7, "_b", .86, 0}, {1, "_b", 0, 0},
	{12, "c'", .86, 0}, {4, "d'", .86, 0}, {4, "_b", .86, 0}, {4, "a", .86, 0},
	{12, "g", .86, 0}, {4, "g", 0, 0}, {8, "g", .86, 0},
	{16, "_b", .86, 0}, {6, "c'", .86, 0}, {2, "c'", 0, 0},
	{12, "d'", .86, 0}, {4, "c'", .86, 0}, {4, "_b", .86, 0}, {4, "g", .86, 0},
	{14, "a", .86, 0}, {2, "a", 0, 0}, {8, "g", .86, 0},
	{10, "f", .86, 0}, {6, "f", 0, 0}, {8, "_b", .86, 0},
	{12, "a", .86, 0}, {4, "c'", .86, 0}, {4, "d'", .86, 0}, {4, "e'", .86, 0},
	{16, "f'", .86, 0}, {7, "e'", .86, 0}, {1, "e'", 0, 0},
	{16, "d'", .86, 0}, {7, "c'", .86, 0}, {1, "c'", 0, 0},
	{12, "d'", .86, 0}, {4, "e'", .86, 0}, {7, "f'", .86, 0}, {1, "f'", 0, 0},
	{16, "_b", .86, 0}, {7, "a", .86, 0}, {1, "a", 0, 0},
	{12, "_b", .86, 0}, {4, "c'", .86, 0}, {8, "d'", .86, 0},
}}

var leadCoda = score.Section{"lead coda", []score.Event{
	{8, "g", .86, 0}, {8, "a", .86, 0}, {8, "_b", .86, 0},
	{4, "c'", .86, 0}, {4, "c'", .86, 0},
	{2, "c'", .86, 0}, {2, "c'", 0, 0}, {4, "a", .86, 0},
	{4, "g", .86, 0}, {4, "f", .86, 0},
	{4, "e", .86, 0}, {4, "e", .86, 0},
	{4, "f", .86, 0}, {4, "f", .86, 0},
	{4, "g", .86, 0}, {2, "g", .86, 0}, {2, "g", 0, 0},
	{4, "a", .86, 0}, {4, "a", .86, 0},
	{4, "a", .86, 0}, {4, "_b", .86, 0},
	{4, "g", .86, 0}, {2, "g", .86, 0}, {2, "g", 0, 0},
	{24, "f", .86, 0}, {12, "f", .86, 0},
}}
